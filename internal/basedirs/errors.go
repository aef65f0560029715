package basedirs

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage matches any failure to read or write the persisted record.
	ErrStorage = errors.New("base directory storage failure")
	// ErrInvalidInput is returned for paths the store refuses to record.
	ErrInvalidInput = errors.New("invalid base directory")
	// ErrClosed is returned by mutations after Close.
	ErrClosed = errors.New("base directory store closed")
)

// StorageError wraps a backend failure with the store operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s base directories: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
