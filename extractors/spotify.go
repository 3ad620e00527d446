package extractors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trackfinder/types"
	"trackfinder/utils"
)

const spotifyExtractionFailed = "Could not extract track information"

type SpotifyExtractor struct{}

func (SpotifyExtractor) Source() types.SourceKind { return types.Spotify }

func (SpotifyExtractor) Profile() utils.HeaderProfile { return utils.SpotifyProfile }

// Extract is all-or-nothing: a page missing either the heading or the
// artist label yields a single error and no partial record. Spotify pages
// never carry a download link.
func (SpotifyExtractor) Extract(doc *goquery.Document) (types.TrackRecord, error) {
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	artist := spotifyArtist(doc)

	if title == "" || artist == "" {
		return types.TrackRecord{}, types.NewMissingFieldError(types.Spotify, spotifyExtractionFailed)
	}

	return types.TrackRecord{
		Title:  title,
		Artist: artist,
	}, nil
}

// spotifyArtist reads the element right after the div labelled "Artist".
func spotifyArtist(doc *goquery.Document) string {
	label := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Text() == "Artist"
	}).First()

	if label.Length() == 0 {
		return ""
	}

	next := utils.NextElement(label.Nodes[0])
	if next == nil {
		return ""
	}

	return strings.TrimSpace(goquery.NewDocumentFromNode(next).Text())
}
