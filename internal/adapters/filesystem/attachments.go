// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/catalog/internal/ports/secondary"
)

// AttachmentStore implements secondary.AttachmentStore as <root>/<code>/<filename>.
type AttachmentStore struct {
	root string
}

// NewAttachmentStore creates a new filesystem attachment store under root.
func NewAttachmentStore(root string) *AttachmentStore {
	return &AttachmentStore{root: root}
}

// Store writes data to <root>/<code>/<base name of filename>.
// Files for the same code share the folder; a file with the same name is replaced.
func (s *AttachmentStore) Store(ctx context.Context, code, filename string, data []byte) (string, error) {
	if filename == "" {
		return "", nil
	}

	dir, err := s.codeDir(code)
	if err != nil {
		return "", err
	}
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid attachment name %q", filename)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write attachment %s: %w", name, err)
	}

	return path, nil
}

// Discard removes the named files from the code's folder, then the folder
// itself if nothing else is left in it. Missing files are ignored.
func (s *AttachmentStore) Discard(ctx context.Context, code string, filenames []string) error {
	dir, err := s.codeDir(code)
	if err != nil {
		return err
	}
	for _, name := range filenames {
		path := filepath.Join(dir, filepath.Base(filepath.Clean(name)))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove attachment %s: %w", name, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read attachments for %s: %w", code, err)
	}
	if len(entries) == 0 {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("failed to remove attachment folder for %s: %w", code, err)
		}
	}
	return nil
}

// codeDir resolves the folder of a code, refusing anything that would escape root.
func (s *AttachmentStore) codeDir(code string) (string, error) {
	if code == "" || code == "." || code == ".." || strings.ContainsAny(code, `/\`) {
		return "", fmt.Errorf("invalid attachment folder %q", code)
	}
	return filepath.Join(s.root, code), nil
}

// Ensure AttachmentStore implements the interface
var _ secondary.AttachmentStore = (*AttachmentStore)(nil)
