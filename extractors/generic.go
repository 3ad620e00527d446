package extractors

import (
	"github.com/PuerkitoBio/goquery"
)

// GenericExtractor only looks for a download link. It backs the standalone
// track check and never produces a full record.
type GenericExtractor struct{}

func (GenericExtractor) FindDownloadLink(doc *goquery.Document) string {
	return findDownloadLink(doc, pageDownloadKeywords, true)
}
