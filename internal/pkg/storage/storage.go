package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrInvalidPath  = errors.New("invalid file path")
	ErrFileNotFound = errors.New("file not found")
)

// FileStorage stores generated files such as archived payroll registers.
type FileStorage interface {
	// Put writes the content at path, replacing any existing file
	Put(ctx context.Context, path string, content io.Reader) error

	// Open returns the file at path; ErrFileNotFound when missing
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error
}
