package gateway

import (
	"context"
	"errors"

	"styr/internal/basedirs"
	"styr/internal/dialog"
	"styr/internal/logging"
)

// API exposes the base directory operations to the frontend via Wails binding.
// It holds no state of its own; every call is forwarded to the store or the picker.
type API struct {
	store  *basedirs.Store
	picker dialog.Picker
	log    logging.Logger
}

func NewAPI(store *basedirs.Store, picker dialog.Picker, logger logging.Logger) *API {
	if logger == nil {
		logger = logging.Nop()
	}
	if picker == nil {
		picker = dialog.Unavailable{}
	}
	return &API{store: store, picker: picker, log: logger}
}

// AddBaseDirResult represents the result of adding a base directory.
type AddBaseDirResult struct {
	Success       bool   `json:"success"`
	AlreadyExists bool   `json:"alreadyExists"`
	Error         string `json:"error,omitempty"`
}

// RemoveBaseDirResult represents the result of removing a base directory.
type RemoveBaseDirResult struct {
	Success bool   `json:"success"`
	Removed bool   `json:"removed"`
	Error   string `json:"error,omitempty"`
}

// GetBaseDirs returns all base directories in insertion order.
func (a *API) GetBaseDirs() []string { return a.store.List() }

// AddBaseDir records dir. Adding a known directory succeeds with AlreadyExists set.
func (a *API) AddBaseDir(dir string) AddBaseDirResult {
	res, err := a.store.Add(context.Background(), dir)
	if err != nil {
		a.log.Warn("add base directory failed", "path", dir, "error", err)
		return AddBaseDirResult{Error: err.Error()}
	}
	return AddBaseDirResult{Success: res.Accepted, AlreadyExists: res.AlreadyPresent}
}

// RemoveBaseDir forgets dir. Removing an unknown directory succeeds with Removed unset.
func (a *API) RemoveBaseDir(dir string) RemoveBaseDirResult {
	res, err := a.store.Remove(context.Background(), dir)
	if err != nil {
		a.log.Warn("remove base directory failed", "path", dir, "error", err)
		return RemoveBaseDirResult{Error: err.Error()}
	}
	return RemoveBaseDirResult{Success: true, Removed: res.Removed}
}

// BrowseDirectory opens a directory selection dialog and returns the chosen
// path, or nil when nothing was chosen. It never adds the path to the store.
func (a *API) BrowseDirectory() *string {
	dir, err := a.picker.PickDirectory(context.Background())
	switch {
	case err == nil:
		return &dir
	case errors.Is(err, dialog.ErrCancelled):
		a.log.Debug("directory selection cancelled")
	case errors.Is(err, dialog.ErrNoWindow):
		a.log.Info("directory dialog requested without a window")
	default:
		a.log.Warn("directory dialog failed", "error", err)
	}
	return nil
}
