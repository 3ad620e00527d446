package utils

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func NewDocument(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

func NewDocumentFromString(s string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(s))
}

// MetaContent returns the content attribute of the first element matching
// selector and whether such an element with a content attribute exists.
func MetaContent(doc *goquery.Document, selector string) (string, bool) {
	return doc.Find(selector).First().Attr("content")
}

// NextElement returns the first element node that follows n in document
// order, descending into n's own children first. Returns nil at the end of
// the document.
func NextElement(n *html.Node) *html.Node {
	for next := nextNode(n); next != nil; next = nextNode(next) {
		if next.Type == html.ElementNode {
			return next
		}
	}
	return nil
}

func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
