// Package history records the videos saved by `vidkit get`.
//
// Only the page a video was discovered on is kept. Direct uris are signed and
// short lived, so they are resolved again whenever a page is revisited.
package history

import (
	"sort"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/video"
	"github.com/vidkit/vidkit/where"
)

// Entry describes one saved video.
type Entry struct {
	Page    string    `json:"page"`
	Title   string    `json:"title"`
	Site    string    `json:"site"`
	Format  string    `json:"format"`
	Path    string    `json:"path"`
	SavedAt time.Time `json:"saved_at"`
}

var cacher = newCacher()

func newCacher() *gache.Cache[map[string]*Entry] {
	return gache.New[map[string]*Entry](&gache.Options{
		Path:       where.History(),
		FileSystem: filesystem.CacheFS{},
	})
}

func load() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Record stores that the video behind page was saved to path, replacing
// any earlier entry for the same page.
func Record(page string, h *video.Handle, path string) error {
	entries, err := load()
	if err != nil {
		return err
	}

	entries[page] = &Entry{
		Page:    page,
		Title:   h.Title(),
		Site:    h.WebSite().String(),
		Format:  h.Format().String(),
		Path:    path,
		SavedAt: time.Now(),
	}

	return cacher.Set(entries)
}

// Get returns all entries, most recent first.
func Get() ([]*Entry, error) {
	entries, err := load()
	if err != nil {
		return nil, err
	}

	list := lo.Values(entries)
	sort.Slice(list, func(i, j int) bool {
		return list[i].SavedAt.After(list[j].SavedAt)
	})
	return list, nil
}

// Remove deletes the entry for page. Removing an unknown page is not an error.
func Remove(page string) error {
	entries, err := load()
	if err != nil {
		return err
	}

	delete(entries, page)
	return cacher.Set(entries)
}
