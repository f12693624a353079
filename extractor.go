package feedtui

import "strings"

// TextExtractor recovers post text from one archived HTML document.
type TextExtractor interface {
	// ExtractText returns the recovered text, or "" when nothing
	// matched. It never errors: archived markup varies by capture era
	// and a miss is routine filtering, not a failure.
	ExtractText(html string) string
}

// TextExtractors evaluates extractors in order, short-circuiting on
// the first non-empty trimmed result.
type TextExtractors []TextExtractor

// ExtractText implements TextExtractor.
func (xs TextExtractors) ExtractText(html string) string {
	for _, x := range xs {
		if text := strings.TrimSpace(x.ExtractText(html)); text != "" {
			return text
		}
	}
	return ""
}
