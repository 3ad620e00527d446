package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trackfinder/mock"
	"trackfinder/providers"
	"trackfinder/utils"
)

func newTestServer(transport *mock.Transport) *Server {
	cfg := DefaultConfig()

	fetcher := cfg.NewFetcher()
	fetcher.Transport = transport

	metrics := NewMetrics()
	api := NewAPI(cfg, fetcher, metrics)

	return NewServer(cfg, api, metrics, nil)
}

func post(t *testing.T, s *Server, path, body string) map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("%s: unexpected status %d", path, rec.Code)
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("%s: invalid json %q: %v", path, rec.Body.String(), err)
	}

	return decoded
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestResolveEndToEnd(t *testing.T) {
	transport := &mock.Transport{Pages: map[string]mock.Page{
		"https://soundcloud.com/example": {Body: `<html><head>
			<meta property="og:title" content="Cool Track">
			<meta property="soundcloud:user" content="artist-handle">
		</head><body><a href="/dl">Free Download</a></body></html>`},
	}}

	got := post(t, newTestServer(transport), "/search", `{"url": "https://soundcloud.com/example"}`)

	expected := map[string]any{
		"source":       "SoundCloud",
		"title":        "Cool Track",
		"artist":       "artist-handle",
		"download_url": "/dl",
		"bandcamp_url": "https://bandcamp.com/search?q=artist-handle%20Cool%20Track",
		"amazon_url":   "https://www.amazon.com/s?k=artist-handle%20Cool%20Track&i=digital-music",
	}

	if len(got) != len(expected) {
		t.Fatalf("unexpected keys in %v", got)
	}

	for key, want := range expected {
		if got[key] != want {
			t.Errorf("%s = %v, want %v", key, got[key], want)
		}
	}
}

func TestResolveAbsentFieldsAreNull(t *testing.T) {
	transport := &mock.Transport{Pages: map[string]mock.Page{
		"https://soundcloud.com/example": {Body: `<html><head><meta property="og:title" content="Cool Track"></head></html>`},
	}}

	got := post(t, newTestServer(transport), "/search", `{"url": "https://soundcloud.com/example"}`)

	for _, key := range []string{"artist", "download_url"} {
		value, ok := got[key]
		if !ok || value != nil {
			t.Errorf("%s should be present and null, got %v", key, value)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	transport := &mock.Transport{Pages: map[string]mock.Page{
		"https://soundcloud.com/empty": {Body: `<html><body></body></html>`},
	}}
	s := newTestServer(transport)

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "missing url", body: `{}`, expected: MSG_NO_URL},
		{name: "blank url", body: `{"url": "  "}`, expected: MSG_NO_URL},
		{name: "no body", body: ``, expected: MSG_NO_URL},
		{name: "broken json", body: `{"url":`, expected: MSG_NO_URL},
		{name: "no og:title", body: `{"url": "https://soundcloud.com/empty"}`, expected: "no og:title meta tag found"},
		{name: "not found", body: `{"url": "https://soundcloud.com/gone"}`, expected: "GET https://soundcloud.com/gone: Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := post(t, s, "/search", tt.body)

			if len(got) != 1 || got["error"] != tt.expected {
				t.Fatalf("expected error %q, got %v", tt.expected, got)
			}
		})
	}

	// missing input never reaches the network
	for _, u := range transport.URLs() {
		if u != "https://soundcloud.com/empty" && u != "https://soundcloud.com/gone" {
			t.Errorf("unexpected request to %s", u)
		}
	}
}

func TestKeywordSearchEmpty(t *testing.T) {
	transport := &mock.Transport{}

	got := post(t, newTestServer(transport), "/keyword-search", `{"keywords": ""}`)

	if len(got) != 1 || got["error"] != "No keywords provided" {
		t.Fatalf("unexpected response %v", got)
	}

	if n := len(transport.Requests()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestKeywordSearch(t *testing.T) {
	searchURL := "https://soundcloud.com/search?q=daft%20punk"
	trackURL := "https://soundcloud.com/daftpunk/around-the-world"

	transport := &mock.Transport{Pages: map[string]mock.Page{
		searchURL: {Body: `<html><body><a href="/daftpunk/around-the-world">Around the World</a></body></html>`},
		providers.SoundCloudOEmbedURL + "?url=" + utils.QueryEscape(trackURL) + "&format=json": {
			Body: `{"title": "Around the World", "html": "<iframe></iframe>"}`,
		},
	}}

	got := post(t, newTestServer(transport), "/keyword-search", `{"keywords": "daft punk"}`)

	if got["soundcloud_url"] != searchURL {
		t.Fatalf("unexpected soundcloud_url %v", got["soundcloud_url"])
	}

	if got["bandcamp_url"] != "https://bandcamp.com/search?q=daft%20punk%20" {
		t.Fatalf("unexpected bandcamp_url %v", got["bandcamp_url"])
	}

	if got["amazon_url"] != "https://www.amazon.com/s?k=daft%20punk%20&i=digital-music" {
		t.Fatalf("unexpected amazon_url %v", got["amazon_url"])
	}

	tracks, ok := got["tracks"].([]any)
	if !ok || len(tracks) != 1 {
		t.Fatalf("expected one track, got %v", got["tracks"])
	}

	track := tracks[0].(map[string]any)
	if track["url"] != trackURL || track["embed_html"] != "<iframe></iframe>" {
		t.Fatalf("unexpected track %v", track)
	}
}

func TestKeywordSearchFailureKeepsMarketplaceLinks(t *testing.T) {
	transport := &mock.Transport{RoundTripFn: mock.FailingRoundTrip}

	got := post(t, newTestServer(transport), "/keyword-search", `{"keywords": "daft punk"}`)

	if got["soundcloud_url"] != nil || got["tracks"] != nil {
		t.Fatalf("soundcloud fields should be null, got %v", got)
	}

	if got["bandcamp_url"] == nil || got["amazon_url"] == nil {
		t.Fatalf("marketplace links should survive a failed search, got %v", got)
	}
}

func TestCheckTrack(t *testing.T) {
	transport := &mock.Transport{Pages: map[string]mock.Page{
		"https://example.com/track": {Body: `<html><body><a href="https://example.com/free">Free DL</a></body></html>`},
		"https://example.com/plain": {Body: `<html><body><a href="/about">About</a></body></html>`},
	}}
	s := newTestServer(transport)

	got := post(t, s, "/check-track", `{"track_url": "https://example.com/track"}`)
	if got["download_url"] != "https://example.com/free" {
		t.Fatalf("unexpected response %v", got)
	}

	got = post(t, s, "/check-track", `{"track_url": "https://example.com/plain"}`)
	if value, ok := got["download_url"]; !ok || value != nil {
		t.Fatalf("expected a null download_url, got %v", got)
	}

	got = post(t, s, "/check-track", `{"url": "https://example.com/track"}`)
	if got["error"] != MSG_NO_TRACK_URL {
		t.Fatalf("unexpected response %v", got)
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(&mock.Transport{}), "/healthz")

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected healthz response %d %q", rec.Code, rec.Body.String())
	}
}

func TestHomepage(t *testing.T) {
	rec := get(t, newTestServer(&mock.Transport{}), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	body := rec.Body.String()
	for _, f := range endpointForms {
		if !strings.Contains(body, fmt.Sprintf(`data-endpoint="%s"`, f.Endpoint)) {
			t.Errorf("homepage is missing the form for %s", f.Endpoint)
		}
	}
}

func TestMetricsCountExtractions(t *testing.T) {
	transport := &mock.Transport{Pages: map[string]mock.Page{
		"https://soundcloud.com/example": {Body: `<html><head><meta property="og:title" content="T"></head></html>`},
	}}
	s := newTestServer(transport)

	post(t, s, "/search", `{"url": "https://soundcloud.com/example"}`)
	post(t, s, "/search", `{"url": "https://soundcloud.com/gone"}`)

	rec := get(t, s, "/metrics")
	body, _ := io.ReadAll(rec.Body)

	for _, line := range []string{
		`trackfinder_extractions_total{outcome="ok",source="SoundCloud"} 1`,
		`trackfinder_extractions_total{outcome="fetch_failed",source="SoundCloud"} 1`,
		`trackfinder_fetches_total{outcome="ok",profile="default"} 1`,
	} {
		if !strings.Contains(string(body), line) {
			t.Errorf("metrics output is missing %q", line)
		}
	}
}
