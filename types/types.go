package types

import "strings"

// SourceKind selects which extraction heuristics apply to a page.
type SourceKind int

const (
	SoundCloud SourceKind = iota
	YouTube
	Spotify
	Generic
)

func (k SourceKind) String() string {
	switch k {
	case SoundCloud:
		return "SoundCloud"
	case YouTube:
		return "YouTube"
	case Spotify:
		return "Spotify"
	case Generic:
		return "Generic"
	}
	return "Unknown"
}

// InputTrack is the artist/title pair handed to marketplace providers.
type InputTrack struct {
	Name   string
	Artist string
}

// Query is the free-text search string marketplaces receive.
func (t InputTrack) Query() string {
	return t.Artist + " " + t.Name
}

// TrackRecord is what every extractor produces. Artist and DownloadURL are
// empty when the page does not expose them.
type TrackRecord struct {
	Title       string
	Artist      string
	DownloadURL string
}

func (r TrackRecord) InputTrack() InputTrack {
	return InputTrack{Name: r.Title, Artist: r.Artist}
}

type MarketplaceLinks struct {
	BandcampURL string
	AmazonURL   string
}

// Resolution is an extracted track plus the marketplace links derived from it.
type Resolution struct {
	Source SourceKind
	Track  TrackRecord
	Links  MarketplaceLinks
}

type TrackReference struct {
	URL       string `json:"url"`
	EmbedHTML string `json:"embed_html"`
}

type SearchResultSet struct {
	SearchURL string
	Tracks    []TrackReference
}

// StripSoundCloudPrefix drops everything up to the last "soundcloud.com/"
// so profile URLs collapse to the user handle.
func StripSoundCloudPrefix(s string) string {
	const prefix = "soundcloud.com/"
	if i := strings.LastIndex(s, prefix); i >= 0 {
		return s[i+len(prefix):]
	}
	return s
}
