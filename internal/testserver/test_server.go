// Package testserver runs the MCP server in-process for end-to-end tests.
package testserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/shielddash/internal/clock"
	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
	"github.com/rpggio/shielddash/internal/domain/settings"
	"github.com/rpggio/shielddash/internal/mcp"
	"github.com/rpggio/shielddash/internal/memstore"
	"github.com/rpggio/shielddash/internal/mockdata"
	"github.com/rpggio/shielddash/internal/repository"
	"github.com/rpggio/shielddash/internal/storage"
)

// Epoch is the fixed time seen by servers built here.
var Epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type TestServer struct {
	Session *sdkmcp.ClientSession
	Store   repository.KeyValueStore
	Clock   *clock.Manual
}

// New starts a server over a fresh in-memory store.
func New(t *testing.T) *TestServer {
	t.Helper()
	return NewWithStore(t, memstore.New())
}

// NewWithStore starts a server over store, so a second server sharing the
// store observes what the first one persisted.
func NewWithStore(t *testing.T, store repository.KeyValueStore) *TestServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	clk := clock.NewManual(Epoch)
	adapter := storage.NewAdapter(store, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Auth:      auth.NewService(ctx, adapter, clk, nil, auth.WithDelays(0, 0)),
			Dashboard: dashboard.NewService(ctx, adapter, mockdata.New(1, clk), clk, nil),
			Settings:  settings.NewService(adapter, nil),
		},
		Version: "test",
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
		cancel()
	})

	return &TestServer{Session: session, Store: store, Clock: clk}
}

// Call invokes a tool and returns its JSON text payload and error flag.
func (ts *TestServer) Call(t *testing.T, name string, args any) (json.RawMessage, bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ts.Session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s failed", name)
	require.NotEmpty(t, result.Content, "tool %s returned no content", name)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "tool %s returned %T", name, result.Content[0])
	return json.RawMessage(text.Text), result.IsError
}

// MustCall invokes a tool that is expected to succeed and decodes its result
// into out when out is non-nil.
func (ts *TestServer) MustCall(t *testing.T, name string, args any, out any) {
	t.Helper()
	payload, isErr := ts.Call(t, name, args)
	require.False(t, isErr, "tool %s failed: %s", name, payload)
	if out != nil {
		require.NoError(t, json.Unmarshal(payload, out))
	}
}

// CallErr invokes a tool that is expected to fail and returns its error code.
func (ts *TestServer) CallErr(t *testing.T, name string, args any) string {
	t.Helper()
	payload, isErr := ts.Call(t, name, args)
	require.True(t, isErr, "tool %s unexpectedly succeeded: %s", name, payload)

	var apiErr mcp.APIError
	require.NoError(t, json.Unmarshal(payload, &apiErr))
	return apiErr.Code
}

// Login signs in with valid throwaway credentials.
func (ts *TestServer) Login(t *testing.T) {
	t.Helper()
	ts.MustCall(t, "login", map[string]any{"email": "analyst@creativeshield.com", "password": "secret1"}, nil)
}
