package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Blob is an opaque key-value medium holding whole values under named slots.
type Blob interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Remove(key string) error
}

const tempDir = ".tmp"

// Load creates a Disk using the provided config, reading the config from the
// environment when cfg is nil.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDir),
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Disk keeps each key in its own file directly under the base path.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// BasePath is the directory holding the stored values.
func (p *Disk) BasePath() string {
	return p.basePath
}

// Get reads the value straight from disk so writes made by another process
// are always seen.
func (p *Disk) Get(key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, ErrNotFound
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, nil
}

func (p *Disk) Set(key string, data []byte) error {
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Remove erases the key. Removing a key that does not exist is not an error.
func (p *Disk) Remove(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
