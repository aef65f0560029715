package basedirs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileBackend keeps the record as a JSON document on disk.
// Every Save replaces the file atomically and syncs it before returning.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path reports the file the record is stored in.
func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Load(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{BaseDirs: []string{}}, nil
		}
		return Record{}, fmt.Errorf("read record file: %w", err)
	}
	return decodeRecord(data)
}

func (b *FileBackend) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(b.path)+"."+uuid.NewString()+".tmp")
	out, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := out.Write(payload); err != nil {
		_ = out.Close()
		cleanup()
		return fmt.Errorf("write temp record: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		cleanup()
		return fmt.Errorf("sync temp record: %w", err)
	}
	if err := out.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp record: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		cleanup()
		return fmt.Errorf("replace record file: %w", err)
	}
	syncDir(dir)
	return nil
}

func (b *FileBackend) Close() error { return nil }

// syncDir flushes the rename to disk. Not every platform supports fsync on a
// directory handle, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
