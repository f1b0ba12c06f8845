// Package filesystem routes every file operation through a swappable afero backend.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs switches back to the real filesystem.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to an empty in-memory filesystem. Tests call it before touching disk.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}

// CacheFS lets gache persist its files through the active backend.
type CacheFS struct{}

func (CacheFS) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return backend.OpenFile(name, flag, perm)
}

func (CacheFS) MkdirAll(path string, perm os.FileMode) error {
	return backend.MkdirAll(path, perm)
}
