package main

import (
	"strings"

	"github.com/labstack/gommon/log"

	"trackfinder/extractors"
	"trackfinder/providers"
	"trackfinder/types"
	"trackfinder/utils"
)

const (
	MSG_NO_URL       = "No URL provided"
	MSG_NO_KEYWORDS  = "No keywords provided"
	MSG_NO_TRACK_URL = "No track URL provided"
)

type ResolveRequest struct {
	URL string `json:"url" form:"url"`
}

type KeywordSearchRequest struct {
	Keywords string `json:"keywords" form:"keywords"`
}

type CheckTrackRequest struct {
	TrackURL string `json:"track_url" form:"track_url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResolveResponse struct {
	Source      string  `json:"source"`
	DownloadURL *string `json:"download_url"`
	BandcampURL string  `json:"bandcamp_url"`
	AmazonURL   string  `json:"amazon_url"`
	Title       string  `json:"title"`
	Artist      *string `json:"artist"`
}

type KeywordSearchResponse struct {
	SoundCloudURL *string                `json:"soundcloud_url"`
	Tracks        []types.TrackReference `json:"tracks"`
	BandcampURL   string                 `json:"bandcamp_url"`
	AmazonURL     string                 `json:"amazon_url"`
}

type CheckTrackResponse struct {
	DownloadURL *string `json:"download_url"`
}

// API holds the three operations behind the HTTP endpoints and the CLI.
// Every method returns a body ready to be encoded as JSON; failures become
// an ErrorResponse instead of a Go error.
type API struct {
	dispatcher *extractors.Dispatcher
	search     *providers.SoundCloudSearch
	metrics    *Metrics
}

func NewAPI(cfg *Config, fetcher *utils.Fetcher, metrics *Metrics) *API {
	if metrics != nil && fetcher.OnFetch == nil {
		fetcher.OnFetch = metrics.RecordFetch
	}

	searchConfig := providers.DefaultSoundCloudSearchConfig()
	searchConfig.Limit = cfg.SearchLimit

	return &API{
		dispatcher: extractors.NewDispatcher(fetcher),
		search:     providers.NewSoundCloudSearch(fetcher, searchConfig),
		metrics:    metrics,
	}
}

func (a *API) ResolveTrack(req ResolveRequest) any {
	pageURL := strings.TrimSpace(req.URL)
	if pageURL == "" {
		return ErrorResponse{Error: MSG_NO_URL}
	}

	resolution, err := a.dispatcher.Resolve(pageURL)
	if a.metrics != nil {
		a.metrics.RecordExtraction(extractors.SourceFor(pageURL), err)
	}

	if err != nil {
		return ErrorResponse{Error: err.Error()}
	}

	return ResolveResponse{
		Source:      resolution.Source.String(),
		DownloadURL: optional(resolution.Track.DownloadURL),
		BandcampURL: resolution.Links.BandcampURL,
		AmazonURL:   resolution.Links.AmazonURL,
		Title:       resolution.Track.Title,
		Artist:      optional(resolution.Track.Artist),
	}
}

// KeywordSearch always returns marketplace links. A failed SoundCloud search
// only nulls out the SoundCloud part of the response.
func (a *API) KeywordSearch(req KeywordSearchRequest) any {
	keywords := strings.TrimSpace(req.Keywords)
	if keywords == "" {
		return ErrorResponse{Error: MSG_NO_KEYWORDS}
	}

	links := providers.Synthesize(keywords, "")

	response := KeywordSearchResponse{
		BandcampURL: links.BandcampURL,
		AmazonURL:   links.AmazonURL,
	}

	results, err := a.search.Search(keywords)
	if err != nil {
		log.Errorf("soundcloud search for %q failed: %v", keywords, err)
		return response
	}

	if a.metrics != nil {
		a.metrics.RecordSearch(len(results.Tracks))
	}

	response.SoundCloudURL = &results.SearchURL
	response.Tracks = results.Tracks

	return response
}

func (a *API) CheckTrack(req CheckTrackRequest) any {
	trackURL := strings.TrimSpace(req.TrackURL)
	if trackURL == "" {
		return ErrorResponse{Error: MSG_NO_TRACK_URL}
	}

	downloadURL, err := a.dispatcher.CheckTrack(trackURL)
	if a.metrics != nil {
		a.metrics.RecordExtraction(types.Generic, err)
	}

	if err != nil {
		log.Errorf("error checking track %s: %v", trackURL, err)
		return ErrorResponse{Error: err.Error()}
	}

	return CheckTrackResponse{DownloadURL: optional(downloadURL)}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
