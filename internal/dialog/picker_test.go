package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

func newTestPicker(appCtx context.Context, open openFunc) *WailsPicker {
	p := NewWailsPicker(func() context.Context { return appCtx }, Options{})
	p.open = open
	return p
}

func TestPickDirectoryReturnsSelection(t *testing.T) {
	var seen wailsruntime.OpenDialogOptions
	p := newTestPicker(context.Background(), func(_ context.Context, opts wailsruntime.OpenDialogOptions) (string, error) {
		seen = opts
		return "/home/user/docs", nil
	})

	got, err := p.PickDirectory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/user/docs", got)
	assert.Equal(t, "Select Directory", seen.Title)
}

func TestPickDirectoryCancelled(t *testing.T) {
	p := newTestPicker(context.Background(), func(context.Context, wailsruntime.OpenDialogOptions) (string, error) {
		return "", nil
	})

	_, err := p.PickDirectory(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPickDirectoryWithoutWindow(t *testing.T) {
	called := false
	p := newTestPicker(nil, func(context.Context, wailsruntime.OpenDialogOptions) (string, error) {
		called = true
		return "/x", nil
	})

	_, err := p.PickDirectory(context.Background())
	assert.ErrorIs(t, err, ErrNoWindow)
	assert.False(t, called, "dialog must not open without a window")

	_, err = NewWailsPicker(nil, Options{}).PickDirectory(context.Background())
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestPickDirectoryDialogError(t *testing.T) {
	boom := errors.New("dialog crashed")
	p := newTestPicker(context.Background(), func(context.Context, wailsruntime.OpenDialogOptions) (string, error) {
		return "", boom
	})

	_, err := p.PickDirectory(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPickDirectoryPassesOptions(t *testing.T) {
	var seen wailsruntime.OpenDialogOptions
	p := NewWailsPicker(func() context.Context { return context.Background() }, Options{Title: "Pick", DefaultDirectory: "/home"})
	p.open = func(_ context.Context, opts wailsruntime.OpenDialogOptions) (string, error) {
		seen = opts
		return "/home/a", nil
	}

	_, err := p.PickDirectory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pick", seen.Title)
	assert.Equal(t, "/home", seen.DefaultDirectory)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.PickDirectory(context.Background())
	assert.ErrorIs(t, err, ErrNoWindow)
}
