package extractors

import (
	"github.com/PuerkitoBio/goquery"

	"trackfinder/utils"
)

var (
	pageDownloadKeywords    = foldAll("free download", "download", "dl", "buy", "purchase", "get it")
	youtubeDownloadKeywords = foldAll("bandcamp.com", "buy", "purchase", "download")
)

func foldAll(keywords ...string) []string {
	folded := make([]string, len(keywords))
	for i, k := range keywords {
		folded[i] = utils.Fold(k)
	}
	return folded
}

// findDownloadLink returns the href of the first anchor, in document order,
// whose href (or visible text, when matchText is set) contains a keyword.
// Returns "" when nothing matches.
func findDownloadLink(doc *goquery.Document, keywords []string, matchText bool) string {
	var found string

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")

		if utils.ContainsAnyFold(href, keywords) || (matchText && utils.ContainsAnyFold(a.Text(), keywords)) {
			found = href
			return false
		}

		return true
	})

	return found
}
