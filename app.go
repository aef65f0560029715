package main

import (
	"context"
	"sync"

	"styr/internal/basedirs"
	"styr/internal/logging"
)

// App holds the Wails runtime context and owns the store's lifetime.
type App struct {
	mu     sync.RWMutex
	ctx    context.Context
	store  *basedirs.Store
	logger logging.Logger
}

// NewApp creates a new App application struct
func NewApp(store *basedirs.Store, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{store: store, logger: logger}
}

// Context returns the runtime context, or nil before startup and after shutdown.
func (a *App) Context() context.Context {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ctx
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()
	a.logger.Info("styr started", "baseDirs", len(a.store.List()))
}

func (a *App) shutdown(ctx context.Context) {
	_ = ctx
	a.mu.Lock()
	a.ctx = nil
	a.mu.Unlock()
	if err := a.store.Close(); err != nil {
		a.logger.Error("close base directory store", "error", err)
	}
}
