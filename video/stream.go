package video

import (
	"errors"
	"io"
	"sync"
)

// Stream is a live response body handed out by Client.FetchStream.
// Reads fail with ErrResourceReleased once the owning handle is closed.
type Stream struct {
	client *Client
	body   io.ReadCloser
	uri    string
	size   int64
	done   func()

	mu     sync.Mutex
	read   int64
	closed bool

	once sync.Once
	err  error
}

// URI the stream was fetched from.
func (s *Stream) URI() string { return s.uri }

// Size is the announced content length, or -1 when the server did not send one.
func (s *Stream) Size() int64 { return s.size }

func (s *Stream) Read(p []byte) (int, error) {
	if s.client.Released() {
		return 0, ErrResourceReleased
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return 0, ErrStreamClosed
	}

	n, err := s.body.Read(p)

	s.mu.Lock()
	s.read += int64(n)
	read := s.read
	s.mu.Unlock()

	switch {
	case err == nil:
		return n, nil
	case s.client.Released():
		return n, ErrResourceReleased
	case errors.Is(err, io.EOF):
		if s.size >= 0 && read < s.size {
			return n, &TransportError{URI: s.uri, Err: io.ErrUnexpectedEOF}
		}
		return n, io.EOF
	default:
		return n, &TransportError{URI: s.uri, Err: err}
	}
}

// Close releases the underlying connection. It is safe to call more than once.
func (s *Stream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.client.forget(s)
	return s.release()
}

func (s *Stream) release() error {
	s.once.Do(func() {
		s.err = s.body.Close()
		s.done()
	})
	return s.err
}
