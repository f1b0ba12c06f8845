// Package video models a remote hosted video as a Handle that resolves its
// current direct URI on demand and retrieves the content buffered or streamed.
//
// Every operation that touches the network comes in two forms: a blocking one
// (URI, Bytes, Stream) and one taking a context.Context (ResolveURI,
// BytesContext, StreamContext). The blocking form runs the same code on the
// calling goroutine.
package video

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/vidkit/vidkit/util"
)

// ErrEmptyTitle is returned by New for a site without a title.
var ErrEmptyTitle = errors.New("video: empty title")

// Handle is one remote video. It owns a Client for its whole lifetime;
// Close releases both.
type Handle struct {
	site   Site
	client *Client
}

type options struct {
	doer      Doer
	userAgent string
}

// Option configures a Handle.
type Option func(*options)

// WithTransport makes the handle fetch through d instead of http.DefaultClient.
func WithTransport(d Doer) Option {
	return func(o *options) { o.doer = d }
}

// WithUserAgent overrides the User-Agent sent with content requests.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// New wraps site in a Handle and creates its Client.
func New(site Site, opts ...Option) (*Handle, error) {
	if site == nil {
		return nil, errors.New("video: nil site")
	}
	if site.Title() == "" {
		return nil, ErrEmptyTitle
	}

	o := options{doer: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	return &Handle{
		site:   site,
		client: NewClient(o.doer, o.userAgent),
	}, nil
}

func (h *Handle) Title() string    { return h.site.Title() }
func (h *Handle) WebSite() WebSite { return h.site.WebSite() }
func (h *Handle) Format() Format   { return h.site.Format() }
func (h *Handle) String() string   { return h.FullName() }
func (h *Handle) Site() Site       { return h.site }
func (h *Handle) State() State     { return h.client.State() }
func (h *Handle) Released() bool   { return h.client.Released() }

// Headers forwards the site's extra request headers, if it has any.
func (h *Handle) Headers() map[string]string {
	if hp, ok := h.site.(HeaderProvider); ok {
		return hp.Headers()
	}
	return nil
}

// FileExtension returns the extension for the handle's format.
// It panics with a *FormatError if the format has no mapping.
func (h *Handle) FileExtension() string {
	ext, err := h.Format().Extension()
	if err != nil {
		panic(err)
	}
	return ext
}

// FullName is the title plus extension with every character that is invalid
// in a file name replaced by an underscore.
func (h *Handle) FullName() string {
	return util.SanitizeFilename(h.Title() + h.FileExtension())
}

// ResolveURI asks the site for the current direct URI. Nothing is cached:
// every call resolves again.
func (h *Handle) ResolveURI(ctx context.Context) (string, error) {
	if h.Released() {
		return "", ErrResourceReleased
	}

	uri, err := h.site.ResolveURI(ctx)
	if err != nil {
		return "", asResolutionError(h.WebSite(), err)
	}
	if uri == "" {
		return "", &ResolutionError{Site: h.WebSite(), Err: errors.New("empty uri")}
	}
	return uri, nil
}

// URI is the blocking form of ResolveURI.
func (h *Handle) URI() (string, error) {
	return h.ResolveURI(context.Background())
}

// BytesContext resolves the URI and downloads the whole content into memory.
func (h *Handle) BytesContext(ctx context.Context) ([]byte, error) {
	return h.client.FetchBytes(ctx, h)
}

// Bytes is the blocking form of BytesContext.
func (h *Handle) Bytes() ([]byte, error) {
	return h.BytesContext(context.Background())
}

// StreamContext resolves the URI and returns the content as a stream.
// The caller must close it.
func (h *Handle) StreamContext(ctx context.Context) (io.ReadCloser, error) {
	s, err := h.client.FetchStream(ctx, h)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Stream is the blocking form of StreamContext.
func (h *Handle) Stream() (io.ReadCloser, error) {
	return h.StreamContext(context.Background())
}

// Close releases the handle's client. Streams obtained from the handle fail
// further reads with ErrResourceReleased. Close is idempotent.
func (h *Handle) Close() error {
	return h.client.Close()
}
