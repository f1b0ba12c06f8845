package video

import (
	"errors"
	"fmt"
)

var (
	// ErrResolution is matched by every *ResolutionError.
	ErrResolution = errors.New("video: resolution failed")

	// ErrTransport is matched by every *TransportError.
	ErrTransport = errors.New("video: transport failed")

	// ErrUnrecognizedFormat is matched by every *FormatError.
	ErrUnrecognizedFormat = errors.New("video: unrecognized format")

	// ErrResourceReleased is returned by operations on a closed handle
	// and by reads on streams whose handle has been closed.
	ErrResourceReleased = errors.New("video: resource released")

	// ErrStreamClosed is returned by reads on a stream the caller already closed.
	ErrStreamClosed = errors.New("video: read on closed stream")
)

// ResolutionError reports that a site could not produce a direct URI:
// the page changed shape, the video is unavailable, or a signature could not be decrypted.
type ResolutionError struct {
	Site WebSite
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s uri: %v", e.Site, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

// TransportError reports a failed transfer: connect, TLS, a non-success status,
// or a body that ended early.
type TransportError struct {
	URI        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 && e.Err == nil {
		return fmt.Sprintf("get %s: unexpected status %d", e.URI, e.StatusCode)
	}
	return fmt.Sprintf("get %s: %v", e.URI, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// FormatError means the extension table does not cover a Format value.
// It is a defect in this package, not a condition callers should handle.
type FormatError struct {
	Format Format
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %s is unrecognized, the extension table must be updated", e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnrecognizedFormat }

// asResolutionError wraps err in a *ResolutionError unless it already is one
// or is ErrResourceReleased.
func asResolutionError(site WebSite, err error) error {
	var re *ResolutionError
	if errors.As(err, &re) || errors.Is(err, ErrResourceReleased) {
		return err
	}
	return &ResolutionError{Site: site, Err: err}
}
