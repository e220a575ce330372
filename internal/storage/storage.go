// Package storage keeps uploaded profile pictures on the local filesystem
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

// ErrUnsupportedExtension is returned when an upload is not an accepted image type
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// AllowedExtensions lists the image extensions accepted for profile pictures
var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// localStorage stores files flat under a single base directory
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// BasePath returns the directory files are written to
func (s *localStorage) BasePath() string {
	return s.basePath
}

// generatePath resolves a stored file name inside the base directory.
// Only the last path element of name is used so callers cannot escape the base directory.
func (s *localStorage) generatePath(name string) string {
	return filepath.Join(s.basePath, filepath.Base(name))
}

// Save writes src under a fresh UUID-based name keeping the extension of originalName
// and returns the stored file name
func (s *localStorage) Save(ctx context.Context, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !AllowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := GenerateFileName(ext)
	path := s.generatePath(name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return name, nil
}

// Open opens a stored file for reading. Directories are reported as not existing.
func (s *localStorage) Open(name string) (io.ReadCloser, error) {
	file, err := os.Open(s.generatePath(name))
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}

// Delete removes a stored file; a file that is already gone is not an error
func (s *localStorage) Delete(name string) error {
	err := os.Remove(s.generatePath(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
