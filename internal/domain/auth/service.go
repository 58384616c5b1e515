package auth

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/shielddash/internal/clock"
	"github.com/rpggio/shielddash/internal/storage"
)

// Default simulated latencies.
const (
	DefaultLoginDelay  = time.Second
	DefaultSignupDelay = 1200 * time.Millisecond
)

// Service is a mock session provider. There is no backend, no password
// hashing and no token; credentials only have to pass local presence rules.
type Service struct {
	mu      sync.Mutex
	storage *storage.Adapter
	clock   clock.Clock
	logger  *slog.Logger
	newID   func() string

	loginDelay  time.Duration
	signupDelay time.Duration

	user    *User
	pending int
}

// Option configures a Service.
type Option func(*Service)

// WithDelays overrides the simulated login and signup latency.
func WithDelays(login, signup time.Duration) Option {
	return func(s *Service) {
		s.loginDelay = login
		s.signupDelay = signup
	}
}

// WithIDGenerator overrides how user ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates an auth service and restores a persisted session.
func NewService(ctx context.Context, store *storage.Adapter, clk clock.Clock, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.System{}
	}
	s := &Service{
		storage:     store,
		clock:       clk,
		logger:      logger,
		newID:       uuid.NewString,
		loginDelay:  DefaultLoginDelay,
		signupDelay: DefaultSignupDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restore(ctx)
	return s
}

// restore loads the persisted user. An unreadable entry is removed and the
// session starts anonymous.
func (s *Service) restore(ctx context.Context) {
	user, ok := storage.Lookup[User](ctx, s.storage, storage.KeyUser)
	if ok && user.ID != "" {
		s.user = &user
		s.logger.Info("session restored", "user_id", user.ID)
		return
	}
	s.storage.Remove(ctx, storage.KeyUser)
}

// Status reports the session state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Service) statusLocked() Status {
	switch {
	case s.pending > 0:
		return StatusAuthenticating
	case s.user != nil:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// Current returns the signed-in user.
func (s *Service) Current() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Login waits the simulated latency, then accepts any non-empty email with a
// password of at least MinPasswordLength characters. The user's name is the
// local part of the email.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	s.begin()
	defer s.end()

	if !s.wait(ctx, s.loginDelay) {
		s.logger.Info("login abandoned", "error", ctx.Err())
		return User{}, ErrInvalidCredentials
	}
	if err := ValidateLogin(email, password); err != nil {
		s.logger.Info("login rejected")
		return User{}, err
	}

	name, _, _ := strings.Cut(email, "@")
	return s.establish(ctx, email, name), nil
}

// Signup waits the simulated latency, then accepts the request when every
// field is present, the password is long enough and both passwords match.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (User, error) {
	s.begin()
	defer s.end()

	if !s.wait(ctx, s.signupDelay) {
		s.logger.Info("signup abandoned", "error", ctx.Err())
		return User{}, ErrInvalidCredentials
	}
	if err := ValidateSignup(req); err != nil {
		s.logger.Info("signup rejected")
		return User{}, err
	}

	return s.establish(ctx, req.Email, req.Name), nil
}

// Logout clears the persisted session.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.Remove(ctx, storage.KeyUser)
	s.user = nil
	s.logger.Info("logged out")
}

// UpdateUser merges upd into the current user and persists it.
func (s *Service) UpdateUser(ctx context.Context, upd UserUpdate) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, ErrNotAuthenticated
	}
	updated := upd.apply(*s.user)
	s.storage.Set(ctx, storage.KeyUser, updated)
	s.user = &updated
	return updated, nil
}

func (s *Service) establish(ctx context.Context, email, name string) User {
	user := User{
		ID:          s.newID(),
		Email:       email,
		Name:        name,
		CreatedAt:   s.clock.Now().UTC().Truncate(time.Millisecond),
		Preferences: DefaultPreferences(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.Set(ctx, storage.KeyUser, user)
	s.user = &user
	s.logger.Info("session established", "user_id", user.ID)
	return user
}

func (s *Service) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *Service) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

// wait blocks for d without holding the lock. It reports false when ctx is
// done first.
func (s *Service) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
