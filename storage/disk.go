// Package storage is the blob store behind dashboard image uploads.
// Files land on local disk and are served as static assets; the returned
// URL is what gets written into menu items and gallery entries.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Blob struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put streams r into the store under a collision-proofed variant of
// filename and returns the public URL.
func (s *DiskStore) Put(filename string, r io.Reader) (*Blob, error) {
	name := uniqueName(filepath.Base(filename))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("write blob: %w", err)
	}
	return &Blob{URL: s.baseURL + "/" + name, Pathname: name}, nil
}

func uniqueName(base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s-%d%s", stem, time.Now().UnixNano(), ext)
}
