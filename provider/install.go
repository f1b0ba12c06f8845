package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/internal/scraper"
	"github.com/vidkit/vidkit/log"
	"github.com/vidkit/vidkit/network"
	"github.com/vidkit/vidkit/where"
)

// Install downloads the Lua script at rawURL into the sources directory.
// A script whose content hash already matches the local copy is left untouched;
// updated reports whether anything was written.
func Install(ctx context.Context, rawURL string) (target string, updated bool, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, fmt.Errorf("parse url: %w", err)
	}

	filename := path.Base(u.Path)
	if path.Ext(filename) != CustomProviderExtension {
		return "", false, fmt.Errorf("%s is not a %s script", filename, CustomProviderExtension)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	remote, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, err
	}

	fs := filesystem.API()
	target = filepath.Join(where.Sources(), filename)

	if local, err := fs.ReadFile(target); err == nil && sha256.Sum256(local) == sha256.Sum256(remote) {
		log.Infof("source %s is up to date", filename)
		return target, false, nil
	}

	tmpPath := target + ".tmp"
	if err := fs.WriteFile(tmpPath, remote, 0644); err != nil {
		return "", false, err
	}

	// Atomic swap prevents a half-written script from being loaded
	if err := fs.Rename(tmpPath, target); err != nil {
		_ = fs.Remove(tmpPath)
		return "", false, err
	}

	scraper.Forget(target)
	log.Infof("installed source %s", filename)
	return target, true, nil
}
