// Package trafilatura provides a last-resort text extractor for
// capture eras that none of the selector strategies handle.
package trafilatura

import (
	"strings"

	"github.com/feedtui/feedtui"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements feedtui.TextExtractor at compile time.
var _ feedtui.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura main-content extraction.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText runs main-content extraction over the archived page
// and returns the plain text, or "" when extraction fails.
func (e *Extractor) ExtractText(rawHTML string) string {
	if rawHTML == "" {
		return ""
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return ""
	}

	return strings.TrimSpace(result.ContentText)
}
