package htmlutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// Collapse joins all whitespace runs into single spaces and trims the ends.
func Collapse(s string) string {
	return strings.Trim(innerWhitespace.ReplaceAllString(s, " "), " ")
}

// First returns the first element matching the selector, or false when the
// document has no such element. Extraction rules are written against this so
// a missing element is an ordinary outcome, not an error.
func First(sel *goquery.Selection, selector string) (*goquery.Selection, bool) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return found, true
}

// Segments returns the trimmed text of every non-empty text node under the
// selection, in document order. Markup that interleaves visually hidden
// phrases with visible values renders as separate segments here.
func Segments(sel *goquery.Selection) []string {
	var segments []string
	for _, node := range sel.Nodes {
		collectSegments(node, &segments)
	}
	return segments
}

func collectSegments(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		text := Collapse(node.Data)
		if text != "" {
			*out = append(*out, text)
		}
		return
	}
	child := node.FirstChild
	for child != nil {
		collectSegments(child, out)
		child = child.NextSibling
	}
}
