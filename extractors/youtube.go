package extractors

import (
	"github.com/PuerkitoBio/goquery"

	"trackfinder/types"
	"trackfinder/utils"
)

const UnknownArtist = "Unknown Artist"

type YouTubeExtractor struct{}

func (YouTubeExtractor) Source() types.SourceKind { return types.YouTube }

func (YouTubeExtractor) Profile() utils.HeaderProfile { return utils.DefaultProfile }

// Extract never leaves Artist empty: the channel name is tried first, then
// the first video tag, then UnknownArtist.
func (YouTubeExtractor) Extract(doc *goquery.Document) (types.TrackRecord, error) {
	title, ok := utils.MetaContent(doc, `meta[property="og:title"]`)
	if !ok || title == "" {
		return types.TrackRecord{}, types.NewMissingFieldError(types.YouTube, "no og:title meta tag found")
	}

	artist, _ := utils.MetaContent(doc, `link[itemprop="name"]`)

	if artist == "" {
		artist, _ = utils.MetaContent(doc, `meta[property="og:video:tag"]`)
	}

	if artist == "" {
		artist = UnknownArtist
	}

	var downloadURL string

	// purchase links only show up on videos that have a description
	if doc.Find(`meta[property="og:description"]`).Length() > 0 {
		downloadURL = findDownloadLink(doc, youtubeDownloadKeywords, false)
	}

	return types.TrackRecord{
		Title:       title,
		Artist:      artist,
		DownloadURL: downloadURL,
	}, nil
}
