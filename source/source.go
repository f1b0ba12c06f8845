// Package source defines the contract site resolvers implement to turn a page URL into a video.
package source

import (
	"context"
	"net/url"

	"github.com/vidkit/vidkit/video"
)

// Source discovers videos on one or more hosting sites.
type Source interface {
	// Name returns the human readable name of the source.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Match reports whether the source handles the page at u.
	// It must not perform network requests.
	Match(u *url.URL) bool

	// Discover describes the video behind the page at rawURL.
	// The returned site resolves its direct URI lazily.
	Discover(ctx context.Context, rawURL string) (video.Site, error)
}
