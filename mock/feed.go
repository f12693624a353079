package mock

import (
	"context"

	"github.com/feedtui/feedtui"
)

var _ feedtui.FeedFetcher = (*FeedFetcher)(nil)

// FeedFetcher is a mock implementation of feedtui.FeedFetcher.
type FeedFetcher struct {
	FetchFn func(ctx context.Context) (feedtui.FeedData, error)
}

func (f *FeedFetcher) Fetch(ctx context.Context) (feedtui.FeedData, error) {
	return f.FetchFn(ctx)
}
