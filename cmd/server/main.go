package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/shielddash/internal/clock"
	"github.com/rpggio/shielddash/internal/config"
	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
	"github.com/rpggio/shielddash/internal/domain/settings"
	"github.com/rpggio/shielddash/internal/mcp"
	"github.com/rpggio/shielddash/internal/memstore"
	"github.com/rpggio/shielddash/internal/mockdata"
	"github.com/rpggio/shielddash/internal/redisstore"
	"github.com/rpggio/shielddash/internal/repository"
	"github.com/rpggio/shielddash/internal/sqlite"
	"github.com/rpggio/shielddash/internal/storage"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// run serves until stdin closes and returns the process exit code. Kept
// apart from main so deferred cleanup runs before os.Exit.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	// stdout carries JSON-RPC, so logs go to stderr or a file.
	logWriter := io.Writer(os.Stderr)
	if cfg.Log.Path != "" {
		fileWriter, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer fileWriter.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Storage.Backend, "error", err)
		return 1
	}
	defer closeStore()

	adapter := storage.NewAdapter(store, logger.With("component", "storage"), storage.WithNamespace(cfg.Storage.Namespace))
	clk := clock.System{}

	seed := cfg.Mock.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	authSvc := auth.NewService(ctx, adapter, clk, logger.With("component", "auth"),
		auth.WithDelays(cfg.Auth.LoginDelay, cfg.Auth.SignupDelay))
	dashboardSvc := dashboard.NewService(ctx, adapter, mockdata.New(seed, clk), clk, logger.With("component", "dashboard"))
	settingsSvc := settings.NewService(adapter, logger.With("component", "settings"))

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Auth:      authSvc,
			Dashboard: dashboardSvc,
			Settings:  settingsSvc,
		},
		Version: version,
		Logger:  logger,
	})

	logger.Info("starting stdio transport", "backend", cfg.Storage.Backend, "version", version)

	// Run blocks until stdin closes or the context is canceled.
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("stdio server error", "error", err)
		return 1
	}
	logger.Info("shutting down")
	return 0
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (repository.KeyValueStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memstore.New(), func() {}, nil
	case config.BackendRedis:
		store := redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := store.Ping(ctx); err != nil {
			// Writes fail soft, so serve anyway.
			logger.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			return nil, nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.DB.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return sqlite.NewKeyValueStore(db), func() { _ = db.Close() }, nil
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
