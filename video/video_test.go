package video

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
)

// testSite is a Site whose resolution is controlled by the test.
type testSite struct {
	title   string
	format  Format
	uri     string
	err     error
	headers map[string]string

	resolved atomic.Int32
}

func (s *testSite) Title() string    { return s.title }
func (s *testSite) WebSite() WebSite { return Direct }
func (s *testSite) Format() Format   { return s.format }

func (s *testSite) ResolveURI(ctx context.Context) (string, error) {
	s.resolved.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return s.uri, ctx.Err()
}

func (s *testSite) Headers() map[string]string { return s.headers }

// countingServer serves handler and counts the requests it received.
type countingServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newCountingServer(handler http.HandlerFunc) *countingServer {
	cs := &countingServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.hits.Add(1)
		handler(w, r)
	}))
	return cs
}

var errPageChanged = errors.New("page layout changed")

func payload(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}
