package wayback

import (
	"context"

	"github.com/feedtui/feedtui"
	"golang.org/x/sync/errgroup"
)

// enrichResult carries a recovered text back to its originating index
// so output order matches input order regardless of completion order.
type enrichResult struct {
	position int
	text     string
	err      error
}

// enrich fetches each capture's archived body and fills in recovered
// text. Fetches run with bounded concurrency; per-capture failures
// are logged and leave Text empty. The batch never fails, and item
// count and order are preserved.
func (f *Feed) enrich(ctx context.Context, captures []feedtui.Capture) []feedtui.Capture {
	if len(captures) == 0 {
		return captures
	}

	concurrency := f.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan enrichResult, len(captures))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, capture := range captures {
			i, capture := i, capture
			g.Go(func() error {
				text, err := f.fetchText(gctx, capture.ArchiveURL)
				resultCh <- enrichResult{position: i, text: text, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	out := make([]feedtui.Capture, len(captures))
	copy(out, captures)

	for result := range resultCh {
		if result.err != nil {
			if f.Logger != nil {
				f.Logger.Warn("capture enrichment failed",
					"url", captures[result.position].ArchiveURL,
					"err", result.err,
				)
			}
			continue
		}
		out[result.position].Text = result.text
	}
	return out
}

// fetchText retrieves one archived page and extracts post text from
// it. An empty result with a nil error means no extraction strategy
// matched the capture's markup era.
func (f *Feed) fetchText(ctx context.Context, archiveURL string) (string, error) {
	delays := f.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	fetchFn := func(ctx context.Context, url string) (string, error) {
		if err := f.wait(ctx); err != nil {
			return "", err
		}
		return f.Client.Fetch(ctx, url)
	}

	html, err := FetchWithRetryDelays(ctx, archiveURL, fetchFn, nil, delays)
	if err != nil {
		return "", err
	}
	if f.Extractor == nil {
		return "", nil
	}
	return f.Extractor.ExtractText(html), nil
}
