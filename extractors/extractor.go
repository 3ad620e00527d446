// Package extractors turns fetched track pages into normalized track records.
//
// Each source has its own ordered set of heuristics over the page's meta tags,
// headings and anchors. Extractors are stateless; the Dispatcher picks one by
// URL host, fetches the page and hands the parsed document over.
package extractors

import (
	"github.com/PuerkitoBio/goquery"

	"trackfinder/types"
	"trackfinder/utils"
)

type Extractor interface {
	Source() types.SourceKind
	// Profile is the header set the source needs to serve usable HTML.
	Profile() utils.HeaderProfile
	Extract(doc *goquery.Document) (types.TrackRecord, error)
}

// ExtractHTML parses html and runs e over it.
func ExtractHTML(e Extractor, html string) (types.TrackRecord, error) {
	doc, err := utils.NewDocumentFromString(html)
	if err != nil {
		return types.TrackRecord{}, &types.ExtractError{Kind: types.ErrExtraction, Source: e.Source(), Err: err}
	}
	return e.Extract(doc)
}

// fetchDocument fetches pageURL with the given profile and parses the body.
func fetchDocument(fetcher *utils.Fetcher, source types.SourceKind, pageURL string, profile utils.HeaderProfile) (*goquery.Document, error) {
	page, err := fetcher.Fetch(pageURL, profile)
	if err != nil {
		return nil, types.NewFetchError(source, err)
	}

	doc, err := utils.NewDocument(page.Body)
	if err != nil {
		return nil, &types.ExtractError{Kind: types.ErrExtraction, Source: source, Err: err}
	}

	return doc, nil
}
