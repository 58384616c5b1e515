package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogFileWriter_TrimsToNewestBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "server.log")
	w, err := openLogFile(path, 20, 10)
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte(strings.Repeat("a", 15)))
	require.NoError(t, err)
	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0123456789", string(data))
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, "DEBUG", parseLogLevel("debug").String())
	require.Equal(t, "WARN", parseLogLevel("warn").String())
	require.Equal(t, "INFO", parseLogLevel("bogus").String())
}
