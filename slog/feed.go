package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/feedtui/feedtui"
)

// Ensure LoggingFeedFetcher implements feedtui.FeedFetcher.
var _ feedtui.FeedFetcher = (*LoggingFeedFetcher)(nil)

// LoggingFeedFetcher wraps a FeedFetcher with debug logging.
type LoggingFeedFetcher struct {
	next   feedtui.FeedFetcher
	name   string
	logger *slog.Logger
}

// NewLoggingFeedFetcher creates a new LoggingFeedFetcher. The name
// identifies the feed in log output.
func NewLoggingFeedFetcher(next feedtui.FeedFetcher, name string, logger *slog.Logger) *LoggingFeedFetcher {
	return &LoggingFeedFetcher{next: next, name: name, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFeedFetcher) Fetch(ctx context.Context) (data feedtui.FeedData, err error) {
	defer func(begin time.Time) {
		f.logger.Info("feed fetch",
			"feed", f.name,
			"captures", len(data.Captures),
			"posts", len(data.Posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx)
}
