package scraper

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/use-agent/tickerheat/models"
)

// indexRegionSelector narrows the rendered page to the live-market content
// region before card parsing, so header and footer navigation anchors never
// reach the row heuristics. ScopeHTML falls back to the full document when
// the site's markup changes and nothing matches.
const indexRegionSelector = "main, #maincontent, [class*='live'], [class*='heatmap']"

// maxIndexNameLen rejects anchors whose first text line is clearly not an
// index name (marketing copy, disclaimers).
const maxIndexNameLen = 50

// ScopeHTML parses rawHTML, matches elements against the given CSS selector,
// and returns the concatenated outer HTML of all matched elements.
//
// If the selector fails to parse or nothing matches, the original rawHTML is
// returned unchanged so that downstream parsing still has something to work
// with.
func ScopeHTML(rawHTML, selector string) string {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return rawHTML
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	matches := cascadia.QueryAll(doc, sel)
	if len(matches) == 0 {
		return rawHTML
	}

	var buf bytes.Buffer
	for _, node := range matches {
		if err := html.Render(&buf, node); err != nil {
			return rawHTML
		}
	}
	return buf.String()
}

// ParseIndexCards extracts index cards from rendered heatmap HTML. Cards are
// anchors whose text mentions NIFTY; the first text line is the index name,
// the following lines carry the latest value and percent change. Duplicate
// names are dropped, keeping the first occurrence.
func ParseIndexCards(rawHTML string) []models.Index {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	indices := []models.Index{}
	seen := make(map[string]struct{})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) == 0 {
			return
		}

		// Rendered text collapses element boundaries, so derive the card's
		// lines from its individual text nodes: name, value, change land in
		// separate child elements on the live page.
		lines := textLines(s.Nodes[0])
		if len(lines) == 0 {
			return
		}

		text := strings.Join(lines, "\n")
		if !strings.Contains(strings.ToUpper(text), "NIFTY") {
			return
		}

		name := lines[0]
		if len(name) > maxIndexNameLen || !hasDigit(text) {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}

		idx := models.Index{Name: name}
		if len(lines) > 1 {
			idx.Value = lines[1]
		}
		if len(lines) > 2 {
			idx.Change = lines[2]
		}
		indices = append(indices, idx)
	})

	return indices
}

// textLines walks the node tree and returns each non-empty text node as its
// own trimmed line, in document order.
func textLines(n *html.Node) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			for _, part := range strings.Split(node.Data, "\n") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					lines = append(lines, trimmed)
				}
			}
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return lines
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
