// Package storage persists uploaded binary payloads on disk under a
// media root. Paths are keyed by entity kind and upload date, e.g.
// properties/2026/08/28/property_3_0.jpg.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MediaStore writes and removes media files below a root directory.
type MediaStore struct {
	root string
}

// NewMediaStore creates a store rooted at dir, creating it if needed.
func NewMediaStore(dir string) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &MediaStore{root: dir}, nil
}

// Root returns the store's base directory.
func (s *MediaStore) Root() string {
	return s.root
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Save writes data under kind/YYYY/MM/DD/<name> and returns the
// relative storage path. Name collisions get a random suffix instead
// of overwriting.
func (s *MediaStore) Save(kind, name string, data []byte) (string, error) {
	name = sanitizeName(name)
	rel := filepath.Join(kind, time.Now().Format("2006/01/02"), name)
	abs := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	if _, err := os.Stat(abs); err == nil {
		rel = filepath.Join(filepath.Dir(rel), uniqueName(name))
		abs = filepath.Join(s.root, rel)
	}

	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

// Remove deletes a stored file by its relative path. A missing file is
// not an error.
func (s *MediaStore) Remove(rel string) error {
	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(abs, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return fmt.Errorf("path escapes media root: %s", rel)
	}
	err := os.Remove(abs)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = uniqueName("upload")
	}
	return name
}

func uniqueName(name string) string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "_" + hex.EncodeToString(buf[:]) + ext
}
