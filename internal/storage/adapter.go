// Package storage layers JSON documents over a repository.KeyValueStore.
//
// Every operation is fail-soft: read failures fall back to the caller's
// default and write failures are logged, never returned. In-memory state
// held by callers stays authoritative for the running process even when
// the backing store rejects a write.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/rpggio/shielddash/internal/repository"
)

// Adapter reads and writes JSON documents under logical keys.
type Adapter struct {
	store     repository.KeyValueStore
	namespace string
	logger    *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithNamespace prefixes every physical key with ns, letting several
// deployments share one backend.
func WithNamespace(ns string) Option {
	return func(a *Adapter) {
		a.namespace = ns
	}
}

// NewAdapter creates a new storage adapter.
func NewAdapter(store repository.KeyValueStore, logger *slog.Logger, opts ...Option) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &Adapter{store: store, logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) physicalKey(key string) string {
	return a.namespace + key
}

// Lookup decodes the document stored under key. The boolean is false when
// the key is absent or its document does not decode into T.
func Lookup[T any](ctx context.Context, a *Adapter, key string) (T, bool) {
	var zero T

	data, err := a.store.Get(ctx, a.physicalKey(key))
	if errors.Is(err, repository.ErrNotFound) {
		return zero, false
	}
	if err != nil {
		a.logger.Error("error reading from storage", "key", key, "error", err)
		return zero, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		a.logger.Warn("discarding unreadable stored document", "key", key, "error", err)
		return zero, false
	}
	return value, true
}

// Get returns the document stored under key, or def when it is missing or
// unreadable.
func Get[T any](ctx context.Context, a *Adapter, key string, def T) T {
	if value, ok := Lookup[T](ctx, a, key); ok {
		return value
	}
	return def
}

// Set encodes value and writes it under key. Callers have already
// committed the change in memory, so the write ignores ctx cancellation.
func (a *Adapter) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		a.logger.Error("error encoding document", "key", key, "error", err)
		return
	}
	if err := a.store.Set(context.WithoutCancel(ctx), a.physicalKey(key), data); err != nil {
		a.logger.Error("error writing to storage", "key", key, "error", err)
	}
}

// Remove deletes key, ignoring ctx cancellation like Set.
func (a *Adapter) Remove(ctx context.Context, key string) {
	if err := a.store.Delete(context.WithoutCancel(ctx), a.physicalKey(key)); err != nil {
		a.logger.Error("error removing from storage", "key", key, "error", err)
	}
}

// ClearAll removes every application key except those listed in except.
func (a *Adapter) ClearAll(ctx context.Context, except ...string) {
	for _, key := range Keys {
		if slices.Contains(except, key) {
			continue
		}
		a.Remove(ctx, key)
	}
}
