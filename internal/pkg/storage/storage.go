package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when a requested file does not exist.
var ErrNotFound = errors.New("file not found")

// FileStorage gives read access to the spreadsheet extracts.
type FileStorage interface {
	// Open retrieves a file for reading
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns size and modification time of a file
	Stat(ctx context.Context, path string) (FileInfo, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}

type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}
