package video

import (
	"context"
	"net/http"
)

// Site is the capability set every hosting site variant provides.
// Retrieval, naming and disposal are built once on top of it by Handle.
type Site interface {
	// Title of the video. Must not be empty.
	Title() string

	// WebSite the video is hosted on. Fixed for the lifetime of the value.
	WebSite() WebSite

	// Format the resolved URI serves.
	Format() Format

	// ResolveURI produces the current direct download URI.
	// It may perform network requests and must not mutate the site.
	ResolveURI(ctx context.Context) (string, error)
}

// Resolver produces the URI a Client fetches.
type Resolver interface {
	ResolveURI(ctx context.Context) (string, error)
}

// HeaderProvider is implemented by sites that need extra request headers
// (referer, cookies) when their resolved URI is fetched.
type HeaderProvider interface {
	Headers() map[string]string
}

// Doer is the transport primitive a Client issues requests through.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
