package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// captured holds what the fake server saw for the last request.
type captured struct {
	method      string
	requestURI  string
	contentType string
	body        []byte
}

// serveJSON starts a server that records the request and answers status with body.
// The returned func reports the last request seen.
func serveJSON(t *testing.T, status int, body string) (*httptest.Server, func() captured) {
	t.Helper()
	var (
		mu   sync.Mutex
		last captured
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		last = captured{
			method:      r.Method,
			requestURI:  r.RequestURI,
			contentType: r.Header.Get("Content-Type"),
			body:        b,
		}
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() captured {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}
