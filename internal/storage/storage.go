package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the named artifact does not exist.
// Callers distinguish it from genuine I/O failures with errors.Is.
var ErrNotFound = errors.New("artifact not found")

// Object describes a stored artifact.
type Object struct {
	Name         string
	Size         int64
	LastModified time.Time
}

// Backend abstracts where dataset artifacts live. The service talks to
// storage only through this interface; the concrete backend (local
// filesystem or MinIO) is selected once at startup.
type Backend interface {
	// Ensure prepares the backend for writes, creating the root directory
	// or bucket if missing. It is idempotent.
	Ensure(ctx context.Context) error

	// Put stores data under name, overwriting any existing artifact.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the full contents of the named artifact. A missing
	// artifact yields an error wrapping ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Exists reports whether the named artifact is present. Plain absence
	// is (false, nil); only genuine backend failures return an error.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns all stored artifacts. Order is backend-defined.
	List(ctx context.Context) ([]Object, error)

	// Delete removes the named artifact. Deleting a missing name succeeds.
	Delete(ctx context.Context, name string) error

	// Location describes the storage target for display purposes.
	Location() string
}
