package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/labstack/gommon/log"
)

// HeaderProfile is the set of request headers a source needs before it
// serves usable HTML. Some sources reject default client identifiers.
type HeaderProfile struct {
	Name      string
	UserAgent string
	Headers   map[string]string
}

var DefaultProfile = HeaderProfile{
	Name:      "default",
	UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
}

// Spotify only renders the track heading for requests that look like a full browser.
var SpotifyProfile = HeaderProfile{
	Name:      "spotify",
	UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	Headers: map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	},
}

const DefaultFetchTimeout = 20 * time.Second

type Page struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Fetcher issues single GET requests. A fresh collector is built per fetch,
// so a Fetcher holds no per-request state and is safe to share.
type Fetcher struct {
	Timeout   time.Duration
	Transport http.RoundTripper

	// OnFetch, when set, is called once per fetch with the profile used and
	// the resulting error (nil on success).
	OnFetch func(profile string, err error)
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Timeout: timeout}
}

// Fetch makes exactly one attempt. Network errors, timeouts and non-2xx
// statuses all come back as an error.
func (f *Fetcher) Fetch(pageURL string, profile HeaderProfile) (*Page, error) {
	page, err := f.fetch(pageURL, profile)

	if f.OnFetch != nil {
		f.OnFetch(profile.Name, err)
	}

	return page, err
}

func (f *Fetcher) fetch(pageURL string, profile HeaderProfile) (*Page, error) {
	c := f.newCollector(profile)

	var page *Page

	c.OnResponse(func(r *colly.Response) {
		page = &Page{
			URL:        r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       r.Body,
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			log.Debugf("fetch %s: status %d: %v", pageURL, r.StatusCode, err)
		} else {
			log.Debugf("fetch %s: %v", pageURL, err)
		}
	})

	log.Debugf("fetching %s with %s profile", pageURL, profile.Name)

	// colly reports statuses of 203 and above as errors named after the status text.
	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("GET %s: %w", pageURL, err)
	}

	c.Wait()

	if page == nil {
		return nil, fmt.Errorf("no response from %s", pageURL)
	}

	return page, nil
}

func (f *Fetcher) newCollector(profile HeaderProfile) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(profile.UserAgent),
	)

	if f.Timeout > 0 {
		c.SetRequestTimeout(f.Timeout)
	}

	if f.Transport != nil {
		c.WithTransport(f.Transport)
	}

	c.OnRequest(func(r *colly.Request) {
		for key, value := range profile.Headers {
			r.Headers.Set(key, value)
		}
	})

	return c
}
