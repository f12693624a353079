package feedtui_test

import (
	"testing"

	"github.com/feedtui/feedtui"
	"github.com/feedtui/feedtui/mock"
	"github.com/stretchr/testify/assert"
)

func TestTextExtractors_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty result", func(t *testing.T) {
		t.Parallel()

		var secondCalled bool
		xs := feedtui.TextExtractors{
			&mock.TextExtractor{ExtractTextFn: func(string) string { return "first" }},
			&mock.TextExtractor{ExtractTextFn: func(string) string {
				secondCalled = true
				return "second"
			}},
		}

		assert.Equal(t, "first", xs.ExtractText("<html></html>"))
		assert.False(t, secondCalled)
	})

	t.Run("falls through whitespace-only results", func(t *testing.T) {
		t.Parallel()

		xs := feedtui.TextExtractors{
			&mock.TextExtractor{ExtractTextFn: func(string) string { return "  \n " }},
			&mock.TextExtractor{ExtractTextFn: func(string) string { return " match " }},
		}

		assert.Equal(t, "match", xs.ExtractText("<html></html>"))
	})

	t.Run("empty when no extractor matches", func(t *testing.T) {
		t.Parallel()

		xs := feedtui.TextExtractors{
			&mock.TextExtractor{ExtractTextFn: func(string) string { return "" }},
		}

		assert.Equal(t, "", xs.ExtractText("<html></html>"))
	})

	t.Run("empty for nil list", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", feedtui.TextExtractors(nil).ExtractText("<html></html>"))
	})
}
