package mock

import "github.com/feedtui/feedtui"

var _ feedtui.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of feedtui.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) string
}

func (e *TextExtractor) ExtractText(html string) string {
	return e.ExtractTextFn(html)
}
