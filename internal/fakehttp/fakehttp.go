// Package fakehttp provides an in-memory http.RoundTripper for exercising
// vendor SDKs without network access.
package fakehttp

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Transport answers every request with a canned JSON response and records
// the requests it saw.
type Transport struct {
	mu       sync.Mutex
	requests []*http.Request
	respond  func(*http.Request) (int, string)
}

// New creates a Transport that always replies with status and body.
func New(status int, body string) *Transport {
	return Respond(func(*http.Request) (int, string) {
		return status, body
	})
}

// Respond creates a Transport that computes each reply with fn.
func Respond(fn func(*http.Request) (int, string)) *Transport {
	return &Transport{respond: fn}
}

// RoundTrip records req and returns the canned response.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	status, body := t.respond(req)
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

// Client returns an http.Client backed by t.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// Requests returns the requests seen so far.
func (t *Transport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*http.Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// Count returns the number of requests seen so far.
func (t *Transport) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}
