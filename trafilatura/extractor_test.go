package trafilatura_test

import (
	"testing"

	"github.com/feedtui/feedtui/trafilatura"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	extractor := trafilatura.NewExtractor()

	t.Run("recovers body text from article markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Archived post</title></head><body>
			<nav><a href="/">Home</a></nav>
			<article>
				<p>This is the archived post body, long enough for the
				extractor to treat it as main content rather than
				boilerplate chrome around it.</p>
			</article>
			<footer>About Help Terms</footer>
		</body></html>`

		text := extractor.ExtractText(html)
		assert.Contains(t, text, "archived post body")
		assert.NotContains(t, text, "About Help Terms")
	})

	t.Run("empty input is a miss", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", extractor.ExtractText(""))
	})

	t.Run("contentless page is a miss", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", extractor.ExtractText("<html><body></body></html>"))
	})
}
