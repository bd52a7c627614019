// Package storage persists the board document as a single JSON file.
package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shiian109/loungeup/internal/apperr"
)

// Store reads and writes the board document at a fixed path. Every save
// overwrites the whole file; there is no incremental update and no
// durability guarantee beyond the rename.
type Store struct {
	path string

	mu        sync.Mutex
	lastSaved string // checksum of the bytes this process last wrote
}

// NewStore creates a store for the document at path. The file does not have
// to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the on-disk document. A missing file yields a fresh empty
// document; a file that exists but fails to parse is fatal and reported as
// apperr.ErrMalformedDocument.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w: %v", s.path, apperr.ErrMalformedDocument, err)
	}
	doc.normalize()

	s.mu.Lock()
	s.lastSaved = checksum(data)
	s.mu.Unlock()
	return doc, nil
}

// Save serializes doc and atomically replaces the file: tmp → fsync →
// rename. Output is indented and keeps non-ASCII text verbatim.
func (s *Store) Save(doc *Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}
	data := buf.Bytes()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".loungeup-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true

	s.mu.Lock()
	s.lastSaved = checksum(data)
	s.mu.Unlock()
	return nil
}

// lastSavedChecksum returns the checksum of the last write made through
// this store, or "" if it has neither loaded nor saved yet.
func (s *Store) lastSavedChecksum() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

func checksum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
