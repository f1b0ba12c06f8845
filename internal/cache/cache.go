// Package cache keeps page bodies fetched by resolver scripts on disk for a short time.
//
// Only page content is cached. Resolved content URIs are short-lived and are
// never written here.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/where"
)

const TTL = time.Hour

// GenerateKey generates a deterministic SHA-256 hash from a request and method pair for use as a cache identifier.
func GenerateKey(request, method string) string {
	sanitized := strings.ToLower(strings.ReplaceAll(request, " ", "")) + method
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read retrieves and deserializes a cached object if it exists and has not exceeded its TTL.
func Read[T any](key string) mo.Option[T] {
	fs := filesystem.API()
	path := filepath.Join(where.Pages(), key)

	info, err := fs.Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return mo.None[T]()
	}

	f, err := fs.Open(path)
	if err != nil {
		return mo.None[T]()
	}
	defer f.Close()

	var target T
	if err := json.NewDecoder(f).Decode(&target); err != nil {
		return mo.None[T]()
	}
	return mo.Some(target)
}

// Write persists a serializable object to the cache using an atomic file swap to ensure data integrity.
func Write(key string, data any) error {
	fs := filesystem.API()
	path := filepath.Join(where.Pages(), key)
	tmpPath := path + ".tmp"

	f, err := fs.Create(tmpPath)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(f).Encode(data); err != nil {
		f.Close()
		return err
	}
	f.Close()

	return fs.Rename(tmpPath, path)
}

// CollectGarbage prunes expired entries from the page cache.
func CollectGarbage() {
	fs := filesystem.API()
	removed := 0
	_ = afero.Walk(fs, where.Pages(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL {
			if fs.Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	if removed > 0 {
		log.Infof("page cache: removed %d expired entries", removed)
	}
}
