package dialog

import (
	"context"
	"errors"
	"fmt"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

var (
	// ErrNoWindow means there is no application window to anchor the dialog to.
	ErrNoWindow = errors.New("no window available for directory dialog")
	// ErrCancelled means the user dismissed the dialog without choosing.
	ErrCancelled = errors.New("directory selection cancelled")
)

// Picker asks the user for a single directory.
type Picker interface {
	PickDirectory(ctx context.Context) (string, error)
}

// Options configures the native dialog.
type Options struct {
	Title            string `json:"title"`
	DefaultDirectory string `json:"defaultDirectory,omitempty"`
}

type openFunc func(ctx context.Context, options wailsruntime.OpenDialogOptions) (string, error)

// WailsPicker opens the native directory dialog of the running Wails app.
type WailsPicker struct {
	ctxFn func() context.Context
	opts  Options
	open  openFunc
}

// NewWailsPicker returns a picker that resolves the app context lazily through
// ctxProvider, since the context only exists once the window has started.
func NewWailsPicker(ctxProvider func() context.Context, opts Options) *WailsPicker {
	if opts.Title == "" {
		opts.Title = "Select Directory"
	}
	return &WailsPicker{ctxFn: ctxProvider, opts: opts, open: wailsruntime.OpenDirectoryDialog}
}

// PickDirectory blocks until the user chooses a directory or dismisses the dialog.
func (p *WailsPicker) PickDirectory(ctx context.Context) (string, error) {
	if p.ctxFn == nil {
		return "", ErrNoWindow
	}
	appCtx := p.ctxFn()
	if appCtx == nil {
		return "", ErrNoWindow
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	selection, err := p.open(appCtx, wailsruntime.OpenDialogOptions{
		Title:                p.opts.Title,
		DefaultDirectory:     p.opts.DefaultDirectory,
		CanCreateDirectories: true,
	})
	if err != nil {
		return "", fmt.Errorf("open directory dialog: %w", err)
	}
	if selection == "" {
		return "", ErrCancelled
	}
	return selection, nil
}

// Unavailable is a Picker for hosts without a window, such as the CLI.
type Unavailable struct{}

func (Unavailable) PickDirectory(context.Context) (string, error) { return "", ErrNoWindow }
