package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/log"
)

// State is the phase of the most recent fetch a Client performed.
type State int32

const (
	StateIdle State = iota
	StateResolving
	StateFetching
	StateDelivered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateFetching:
		return "fetching"
	case StateDelivered:
		return "delivered"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Client turns a resolved URI into bytes or a stream.
// It is owned by exactly one Handle and must not be shared.
type Client struct {
	doer      Doer
	userAgent string

	// ctx lives until Close. Every request is bound to it.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	streams  map[*Stream]struct{}
	released bool

	state atomic.Int32
}

// NewClient returns a Client issuing requests through doer.
func NewClient(doer Doer, userAgent string) *Client {
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		doer:      doer,
		userAgent: userAgent,
		ctx:       ctx,
		cancel:    cancel,
		streams:   make(map[*Stream]struct{}),
	}
}

// State reports the phase of the latest fetch.
func (c *Client) State() State {
	return State(c.state.Load())
}

// Released reports whether Close has been called.
func (c *Client) Released() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released
}

func (c *Client) setState(s State) {
	c.state.Store(int32(s))
	log.WithField("state", s).Debug("video client transition")
}

func (c *Client) fail(err error) error {
	c.setState(StateFailed)
	if c.Released() && !errors.Is(err, ErrResolution) {
		return ErrResourceReleased
	}
	log.Warn(err)
	return err
}

// FetchBytes resolves r and reads the whole response body into memory.
// A truncated body is an error, never a short buffer.
func (c *Client) FetchBytes(ctx context.Context, r Resolver) ([]byte, error) {
	resp, uri, done, err := c.open(ctx, r)
	if err != nil {
		return nil, err
	}
	defer done()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(&TransportError{URI: uri, StatusCode: resp.StatusCode, Err: err})
	}

	if resp.ContentLength >= 0 && int64(len(data)) != resp.ContentLength {
		return nil, c.fail(&TransportError{
			URI:        uri,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read %d of %d bytes: %w", len(data), resp.ContentLength, io.ErrUnexpectedEOF),
		})
	}

	c.setState(StateDelivered)
	return data, nil
}

// FetchStream resolves r and returns the live response body.
// The stream stays readable until it is closed or the Client is released.
func (c *Client) FetchStream(ctx context.Context, r Resolver) (*Stream, error) {
	resp, uri, done, err := c.open(ctx, r)
	if err != nil {
		return nil, err
	}

	s := &Stream{
		client: c,
		body:   resp.Body,
		uri:    uri,
		size:   resp.ContentLength,
		done:   done,
	}

	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		s.release()
		return nil, c.fail(ErrResourceReleased)
	}
	c.streams[s] = struct{}{}
	c.mu.Unlock()

	c.setState(StateDelivered)
	return s, nil
}

// open resolves r and issues the GET. On success the caller owns resp.Body
// and must call done once the body is no longer needed.
func (c *Client) open(ctx context.Context, r Resolver) (resp *http.Response, uri string, done func(), err error) {
	if c.Released() {
		return nil, "", nil, ErrResourceReleased
	}

	c.setState(StateResolving)
	uri, err = r.ResolveURI(ctx)
	if err != nil {
		return nil, "", nil, c.fail(asResolutionError(siteOf(r), err))
	}

	c.setState(StateFetching)
	reqCtx, cancel := context.WithCancelCause(ctx)
	stop := context.AfterFunc(c.ctx, func() { cancel(ErrResourceReleased) })
	done = func() {
		stop()
		cancel(nil)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, uri, nil)
	if err != nil {
		done()
		return nil, uri, nil, c.fail(&TransportError{URI: uri, Err: err})
	}

	req.Header.Set("User-Agent", c.userAgent)
	if hp, ok := r.(HeaderProvider); ok {
		for k, v := range hp.Headers() {
			req.Header.Set(k, v)
		}
	}

	log.Infof("fetching %s", uri)
	resp, err = c.doer.Do(req)
	if err != nil {
		done()
		return nil, uri, nil, c.fail(&TransportError{URI: uri, Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		done()
		return nil, uri, nil, c.fail(&TransportError{URI: uri, StatusCode: resp.StatusCode})
	}

	return resp, uri, done, nil
}

// Close aborts in-flight requests and invalidates every stream handed out.
// Calling Close more than once is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return nil
	}
	c.released = true
	streams := c.streams
	c.streams = nil
	c.mu.Unlock()

	c.cancel()

	var errs []error
	for s := range streams {
		if err := s.release(); err != nil {
			errs = append(errs, err)
		}
	}

	log.Debugf("video client released, %d open streams closed", len(streams))
	return errors.Join(errs...)
}

func (c *Client) forget(s *Stream) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.streams, s)
}

func siteOf(r Resolver) WebSite {
	if s, ok := r.(Site); ok {
		return s.WebSite()
	}
	return Custom
}
