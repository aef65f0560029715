package gateway

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"styr/internal/basedirs"
	"styr/internal/dialog"
)

type stubPicker struct {
	dir   string
	err   error
	calls int
}

func (p *stubPicker) PickDirectory(context.Context) (string, error) {
	p.calls++
	return p.dir, p.err
}

// failingBackend accepts loads but refuses every save.
type failingBackend struct{}

func (failingBackend) Load(context.Context) (basedirs.Record, error) { return basedirs.Record{}, nil }
func (failingBackend) Save(context.Context, basedirs.Record) error   { return errors.New("disk full") }
func (failingBackend) Close() error                                  { return nil }

func newTestAPI(t *testing.T, picker dialog.Picker) (*API, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styr-config.json")
	store, err := basedirs.Open(context.Background(), basedirs.NewFileBackend(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewAPI(store, picker, nil), path
}

func TestGatewayEndToEnd(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	assert.Empty(t, api.GetBaseDirs())

	res := api.AddBaseDir("/home/user/docs")
	assert.Equal(t, AddBaseDirResult{Success: true}, res)
	assert.Equal(t, []string{"/home/user/docs"}, api.GetBaseDirs())

	res = api.AddBaseDir("/home/user/docs")
	assert.Equal(t, AddBaseDirResult{Success: true, AlreadyExists: true}, res)
	assert.Equal(t, []string{"/home/user/docs"}, api.GetBaseDirs())

	api.AddBaseDir("/home/user/pics")
	assert.Equal(t, []string{"/home/user/docs", "/home/user/pics"}, api.GetBaseDirs())

	removed := api.RemoveBaseDir("/home/user/docs")
	assert.Equal(t, RemoveBaseDirResult{Success: true, Removed: true}, removed)
	assert.Equal(t, []string{"/home/user/pics"}, api.GetBaseDirs())
}

func TestGatewayRemoveAbsent(t *testing.T) {
	api, _ := newTestAPI(t, nil)
	api.AddBaseDir("/a")

	res := api.RemoveBaseDir("/missing")
	assert.Equal(t, RemoveBaseDirResult{Success: true, Removed: false}, res)
	assert.Equal(t, []string{"/a"}, api.GetBaseDirs())
}

func TestGatewayStorageFailureIsStructured(t *testing.T) {
	store, err := basedirs.Open(context.Background(), failingBackend{})
	require.NoError(t, err)
	api := NewAPI(store, nil, nil)

	add := api.AddBaseDir("/a")
	assert.False(t, add.Success)
	assert.Contains(t, add.Error, "disk full")
	assert.Empty(t, api.GetBaseDirs())
}

func TestGatewayInvalidInput(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	res := api.AddBaseDir("  ")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestBrowseReturnsSelectionWithoutAdding(t *testing.T) {
	picker := &stubPicker{dir: "/home/user/docs"}
	api, _ := newTestAPI(t, picker)

	got := api.BrowseDirectory()
	require.NotNil(t, got)
	assert.Equal(t, "/home/user/docs", *got)
	assert.Equal(t, 1, picker.calls)
	assert.Empty(t, api.GetBaseDirs(), "browse must not add implicitly")
}

func TestBrowseNoSelection(t *testing.T) {
	cases := map[string]error{
		"cancelled":    dialog.ErrCancelled,
		"no window":    dialog.ErrNoWindow,
		"dialog error": errors.New("boom"),
	}
	for name, pickErr := range cases {
		t.Run(name, func(t *testing.T) {
			api, _ := newTestAPI(t, &stubPicker{err: pickErr})
			assert.Nil(t, api.BrowseDirectory())
			assert.Empty(t, api.GetBaseDirs())
		})
	}
}

func TestBrowseWithoutPicker(t *testing.T) {
	api, _ := newTestAPI(t, nil)
	assert.Nil(t, api.BrowseDirectory())
}

func TestGatewayDurableAcrossRestart(t *testing.T) {
	api, path := newTestAPI(t, nil)
	api.AddBaseDir("/home/user/docs")

	store, err := basedirs.Open(context.Background(), basedirs.NewFileBackend(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.Equal(t, []string{"/home/user/docs"}, NewAPI(store, nil, nil).GetBaseDirs())
}
