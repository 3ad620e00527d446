package mock

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
)

var _ http.RoundTripper = &Transport{}

// Page is a canned reply served by Transport.
type Page struct {
	Status int
	Body   string
}

// Transport serves canned pages keyed by full request URL, so code built on
// an http.Client can be tested without network access. Unknown URLs get a
// 404, or whatever RoundTripFn returns when it is set.
type Transport struct {
	Pages       map[string]Page
	RoundTripFn func(req *http.Request) (*http.Response, error)

	mu       sync.Mutex
	requests []*http.Request
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	if page, ok := t.Pages[req.URL.String()]; ok {
		status := page.Status
		if status == 0 {
			status = http.StatusOK
		}
		return Respond(req, status, page.Body), nil
	}

	if t.RoundTripFn != nil {
		return t.RoundTripFn(req)
	}

	return Respond(req, http.StatusNotFound, "not found"), nil
}

// Requests returns every request seen so far, in order.
func (t *Transport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*http.Request(nil), t.requests...)
}

// URLs returns the URL of every request seen so far, in order.
func (t *Transport) URLs() []string {
	var urls []string
	for _, req := range t.Requests() {
		urls = append(urls, req.URL.String())
	}
	return urls
}

// ErrNetwork is what FailingRoundTrip returns.
var ErrNetwork = errors.New("connection refused")

// FailingRoundTrip can be set as RoundTripFn to simulate an unreachable host.
func FailingRoundTrip(*http.Request) (*http.Response, error) {
	return nil, ErrNetwork
}

// Respond builds a reply to req with the given status and an HTML body.
func Respond(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Status:        http.StatusText(status),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
