// Package wayback recovers historical social posts from a public web
// archive. The pipeline queries the archive's CDX capture index,
// filters rows down to genuine post-detail captures, fetches each
// archived page with bounded concurrency, and recovers post text from
// the archived HTML.
package wayback

import (
	"context"
	"log/slog"
	"time"

	"github.com/feedtui/feedtui"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the archive root used for index queries and
// capture bodies.
const DefaultBaseURL = "https://web.archive.org"

// DefaultConcurrency bounds in-flight capture fetches so the archive
// host is not overwhelmed or provoked into throttling.
const DefaultConcurrency = 3

// rawSuffix requests the original capture bytes without replay
// chrome, keeping the archived markup intact for extraction.
const rawSuffix = "id_"

var _ feedtui.FeedFetcher = (*Feed)(nil)

// Feed fetches archived posts matching a profile or search query.
// The zero value is not usable; Query, MaxItems and Client must be
// set.
type Feed struct {
	// Query is a profile or search pattern, e.g. "twitter.com/user*".
	Query string

	// MaxItems caps the number of returned captures.
	MaxItems int

	// Client fetches the capture index and archived page bodies.
	Client feedtui.Fetcher

	// Extractor recovers post text from archived HTML. When nil,
	// captures are returned without text.
	Extractor feedtui.TextExtractor

	// BaseURL overrides DefaultBaseURL. Used by tests.
	BaseURL string

	// Concurrency bounds in-flight capture fetches. Values <= 0 mean
	// DefaultConcurrency.
	Concurrency int

	// RetryDelays configures backoff between capture fetch attempts.
	// nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// Limiter, when set, gates every request to the archive host.
	Limiter *rate.Limiter

	// Logger, when set, receives per-capture enrichment diagnostics.
	Logger *slog.Logger
}

// Fetch runs the pipeline: index query, per-row classification,
// bounded enrichment. Only the index stage can fail the call; every
// later stage degrades to captures without recovered text. The
// returned captures preserve index order and never exceed MaxItems.
func (f *Feed) Fetch(ctx context.Context) (feedtui.FeedData, error) {
	rows, err := f.fetchIndex(ctx)
	if err != nil {
		return feedtui.FeedData{}, err
	}

	captures := f.classifyRows(rows)
	captures = f.enrich(ctx, captures)

	return feedtui.CapturesData(captures), nil
}

func (f *Feed) baseURL() string {
	if f.BaseURL != "" {
		return f.BaseURL
	}
	return DefaultBaseURL
}

// wait applies the optional archive-host rate limit.
func (f *Feed) wait(ctx context.Context) error {
	if f.Limiter == nil {
		return nil
	}
	return f.Limiter.Wait(ctx)
}
