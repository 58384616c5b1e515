package settings

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rpggio/shielddash/internal/storage"
)

// Service reads and writes the user's settings document.
type Service struct {
	mu      sync.Mutex
	storage *storage.Adapter
	logger  *slog.Logger
}

func NewService(store *storage.Adapter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{storage: store, logger: logger}
}

// Get returns the saved settings, or Defaults when none are stored.
func (s *Service) Get(ctx context.Context) UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.Get(ctx, s.storage, storage.KeyUserSettings, Defaults())
}

// Save replaces the stored settings.
func (s *Service) Save(ctx context.Context, settings UserSettings) (UserSettings, error) {
	if settings.Security.SessionTimeout <= 0 {
		return UserSettings{}, fmt.Errorf("%w: session timeout must be positive", ErrInvalidSettings)
	}
	switch settings.Privacy.ProfileVisibility {
	case VisibilityPublic, VisibilityPrivate:
	default:
		return UserSettings{}, fmt.Errorf("%w: unknown profile visibility %q", ErrInvalidSettings, settings.Privacy.ProfileVisibility)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.Set(ctx, storage.KeyUserSettings, settings)
	s.logger.Info("settings saved")
	return settings, nil
}
