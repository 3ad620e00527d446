package extractors

import (
	"github.com/labstack/gommon/log"

	"trackfinder/providers"
	"trackfinder/types"
	"trackfinder/utils"
)

// SourceFor picks the extractor for a URL by its host. YouTube is checked
// before Spotify; every other host, including unparseable input, falls back
// to SoundCloud.
func SourceFor(rawURL string) types.SourceKind {
	host := utils.Hostname(rawURL)

	switch {
	case utils.HostMatches(host, "youtube.com"), utils.HostMatches(host, "youtu.be"):
		return types.YouTube
	case utils.HostMatches(host, "spotify.com"):
		return types.Spotify
	default:
		return types.SoundCloud
	}
}

type Dispatcher struct {
	fetcher    *utils.Fetcher
	extractors map[types.SourceKind]Extractor
	generic    GenericExtractor
}

func NewDispatcher(fetcher *utils.Fetcher) *Dispatcher {
	return &Dispatcher{
		fetcher: fetcher,
		extractors: map[types.SourceKind]Extractor{
			types.SoundCloud: SoundCloudExtractor{},
			types.YouTube:    YouTubeExtractor{},
			types.Spotify:    SpotifyExtractor{},
		},
	}
}

// Extract fetches pageURL and runs the extractor for source over it.
func (d *Dispatcher) Extract(source types.SourceKind, pageURL string) (types.TrackRecord, error) {
	extractor, ok := d.extractors[source]
	if !ok {
		extractor = d.extractors[types.SoundCloud]
	}

	doc, err := fetchDocument(d.fetcher, extractor.Source(), pageURL, extractor.Profile())
	if err != nil {
		return types.TrackRecord{}, err
	}

	return extractor.Extract(doc)
}

// Resolve extracts the track behind pageURL and attaches marketplace links.
// On error no links are built.
func (d *Dispatcher) Resolve(pageURL string) (*types.Resolution, error) {
	source := SourceFor(pageURL)

	log.Infof("resolving %s as %s", pageURL, source)

	track, err := d.Extract(source, pageURL)
	if err != nil {
		log.Warnf("%s extraction failed for %s: %v", source, pageURL, err)
		return nil, err
	}

	return &types.Resolution{
		Source: source,
		Track:  track,
		Links:  providers.Synthesize(track.Artist, track.Title),
	}, nil
}

// CheckTrack looks for a download link on any track page. An empty result
// with a nil error means the page has none.
func (d *Dispatcher) CheckTrack(trackURL string) (string, error) {
	doc, err := fetchDocument(d.fetcher, types.Generic, trackURL, utils.DefaultProfile)
	if err != nil {
		return "", err
	}

	return d.generic.FindDownloadLink(doc), nil
}
