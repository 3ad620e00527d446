package extractors

import (
	"github.com/PuerkitoBio/goquery"

	"trackfinder/types"
	"trackfinder/utils"
)

type SoundCloudExtractor struct{}

func (SoundCloudExtractor) Source() types.SourceKind { return types.SoundCloud }

func (SoundCloudExtractor) Profile() utils.HeaderProfile { return utils.DefaultProfile }

func (SoundCloudExtractor) Extract(doc *goquery.Document) (types.TrackRecord, error) {
	title, ok := utils.MetaContent(doc, `meta[property="og:title"]`)
	if !ok || title == "" {
		return types.TrackRecord{}, types.NewMissingFieldError(types.SoundCloud, "no og:title meta tag found")
	}

	// the user tag is sometimes a full profile URL
	artist, _ := utils.MetaContent(doc, `meta[property="soundcloud:user"]`)
	artist = types.StripSoundCloudPrefix(artist)

	return types.TrackRecord{
		Title:       title,
		Artist:      artist,
		DownloadURL: findDownloadLink(doc, pageDownloadKeywords, true),
	}, nil
}
