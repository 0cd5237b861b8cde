package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: abs}, nil
}

// resolve maps path inside basePath, rejecting anything that escapes it.
func (s *LocalStorage) resolve(path string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.Clean("/"+path))
	rel, err := filepath.Rel(s.basePath, fullPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return fullPath, nil
}

// Put writes to a temporary file first so readers never see a partial file.
func (s *LocalStorage) Put(ctx context.Context, path string, content io.Reader) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
