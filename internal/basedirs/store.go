package basedirs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"styr/internal/logging"
)

// AddResult reports the outcome of Store.Add.
type AddResult struct {
	Accepted       bool
	AlreadyPresent bool
}

// RemoveResult reports the outcome of Store.Remove.
type RemoveResult struct {
	Removed bool
}

// Listener receives a snapshot of the list after every successful mutation.
type Listener func(dirs []string)

// Store owns the ordered, de-duplicated list of base directories.
// All operations are serialized; a mutation is durable in the backend
// before the in-memory list changes.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	dirs      []string
	listeners map[int]Listener
	nextID    int
	closed    bool

	logger          logging.Logger
	requireAbsolute bool
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// RequireAbsolute makes Add reject paths that are not absolute.
func RequireAbsolute() Option {
	return func(s *Store) { s.requireAbsolute = true }
}

// Open loads the persisted list from backend, starting empty when nothing is stored.
// A record that cannot be decoded is logged and replaced by the next mutation.
func Open(ctx context.Context, backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend:   backend,
		listeners: map[int]Listener{},
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	rec, err := backend.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrCorruptRecord):
		s.logger.Warn("discarding unreadable base directory record", "error", err)
		rec = Record{}
	default:
		return nil, &StorageError{Op: "load", Err: err}
	}

	s.dirs = dedupe(rec.BaseDirs)
	s.logger.Debug("base directories loaded", "count", len(s.dirs))
	return s, nil
}

// List returns a copy of the current list in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Contains reports whether path is currently recorded.
func (s *Store) Contains(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(path) >= 0
}

// Add appends path unless an identical string is already present.
// Adding a present path is an accepted no-op.
func (s *Store) Add(ctx context.Context, path string) (AddResult, error) {
	if err := s.validate(path); err != nil {
		return AddResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return AddResult{}, ErrClosed
	}
	if s.indexOf(path) >= 0 {
		return AddResult{Accepted: true, AlreadyPresent: true}, nil
	}

	next := make([]string, len(s.dirs), len(s.dirs)+1)
	copy(next, s.dirs)
	next = append(next, path)
	if err := s.commit(ctx, "add", next); err != nil {
		return AddResult{}, err
	}
	s.logger.Info("base directory added", "path", path, "count", len(next))
	return AddResult{Accepted: true}, nil
}

// Remove drops every entry equal to path. Removing an absent path is a no-op.
func (s *Store) Remove(ctx context.Context, path string) (RemoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return RemoveResult{}, ErrClosed
	}

	next := make([]string, 0, len(s.dirs))
	for _, d := range s.dirs {
		if d != path {
			next = append(next, d)
		}
	}
	if len(next) == len(s.dirs) {
		return RemoveResult{}, nil
	}
	if err := s.commit(ctx, "remove", next); err != nil {
		return RemoveResult{}, err
	}
	s.logger.Info("base directory removed", "path", path, "count", len(next))
	return RemoveResult{Removed: true}, nil
}

// Subscribe registers fn for change notifications. Listeners run with the
// store locked and must not call back into it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close releases the backend. Mutations after Close fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.listeners = map[int]Listener{}
	if err := s.backend.Close(); err != nil {
		return &StorageError{Op: "close", Err: err}
	}
	return nil
}

// commit persists next and only then swaps it in. Caller holds s.mu.
func (s *Store) commit(ctx context.Context, op string, next []string) error {
	if err := s.backend.Save(ctx, Record{BaseDirs: next}); err != nil {
		s.logger.Error("persist base directories failed", "op", op, "error", err)
		return &StorageError{Op: op, Err: err}
	}
	s.dirs = next
	for _, fn := range s.listeners {
		fn(s.snapshot())
	}
	return nil
}

func (s *Store) validate(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidInput)
	}
	if s.requireAbsolute && !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidInput, path)
	}
	return nil
}

func (s *Store) indexOf(path string) int {
	for i, d := range s.dirs {
		if d == path {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []string {
	out := make([]string, len(s.dirs))
	copy(out, s.dirs)
	return out
}
