// Package goquery implements the post-text extraction cascade using
// CSS selector queries. Archived markup varies by capture era and no
// single selector works universally, so strategies are evaluated in
// order and the first non-empty match wins.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/feedtui/feedtui"
)

// minDescriptionLength guards the generic description meta tag
// against short placeholder text masquerading as post content.
const minDescriptionLength = 20

// defaultBoilerplatePhrases are site-wide taglines that disqualify a
// generic description value. The list is heuristic data, not logic;
// override it with WithBoilerplatePhrases as captures surface new
// placeholder text.
var defaultBoilerplatePhrases = []string{
	"from breaking news and entertainment",
	"see what's happening in the world",
	"the latest stories on twitter",
	"log in to twitter",
	"sign up now to get your own",
	"something went wrong",
	"javascript is not available",
}

// Ensure Extractor implements feedtui.TextExtractor at compile time.
var _ feedtui.TextExtractor = (*Extractor)(nil)

// Extractor recovers post text from archived HTML documents.
type Extractor struct {
	boilerplate []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBoilerplatePhrases replaces the phrase list used to reject
// generic description values. Phrases are matched case-insensitively
// against the whole description.
func WithBoilerplatePhrases(phrases []string) Option {
	return func(e *Extractor) {
		e.boilerplate = phrases
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		boilerplate: defaultBoilerplatePhrases,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// strategy recovers text from one parsed document, returning "" on a
// miss.
type strategy func(doc *goquery.Document) string

// ExtractText evaluates the cascade and returns the first non-empty
// trimmed match, or "" when no strategy matches. Unparseable HTML is
// a miss, not an error.
func (e *Extractor) ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	strategies := []strategy{
		metaContent(`meta[property="og:description"]`),
		metaContent(`meta[name="twitter:description"]`),
		e.genericDescription,
		legacyInlineText,
		linkedDataBody,
	}
	for _, s := range strategies {
		if text := strings.TrimSpace(s(doc)); text != "" {
			return text
		}
	}
	return ""
}

// metaContent reads the content attribute of the first element
// matching the selector.
func metaContent(selector string) strategy {
	return func(doc *goquery.Document) string {
		content, _ := doc.Find(selector).First().Attr("content")
		return content
	}
}

// genericDescription accepts the page-level description meta tag only
// when it is long enough and free of known boilerplate taglines.
func (e *Extractor) genericDescription(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	content = strings.TrimSpace(content)
	if len(content) <= minDescriptionLength {
		return ""
	}
	lower := strings.ToLower(content)
	for _, phrase := range e.boilerplate {
		if strings.Contains(lower, phrase) {
			return ""
		}
	}
	return content
}

// legacyInlineText reads the inline post-text element used by older
// capture eras.
func legacyInlineText(doc *goquery.Document) string {
	return doc.Find(".tweet-text").First().Text()
}

// linkedDataBody reads the post body from embedded JSON-LD scripts,
// which may hold a single object or an array of objects. Malformed
// blocks are skipped, not errors.
func linkedDataBody(doc *goquery.Document) string {
	var body string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw := sel.Text()

		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err == nil {
			if text := articleBody(obj); text != "" {
				body = text
				return false
			}
			return true
		}

		var arr []map[string]any
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			for _, obj := range arr {
				if text := articleBody(obj); text != "" {
					body = text
					return false
				}
			}
		}
		return true
	})
	return body
}

func articleBody(obj map[string]any) string {
	text, _ := obj["articleBody"].(string)
	return text
}
