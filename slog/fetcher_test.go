package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/feedtui/feedtui"
	"github.com/feedtui/feedtui/mock"
	feedslog "github.com/feedtui/feedtui/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		fetcher := feedslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "body", nil
			},
		}, logger)

		body, err := fetcher.Fetch(context.Background(), "https://example.com/page")
		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Contains(t, buf.String(), "https://example.com/page")
		assert.Contains(t, buf.String(), "bytes=4")
	})

	t.Run("logs errors and passes them through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		fetcher := feedslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection refused")
			},
		}, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com/page")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestLoggingFeedFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	fetcher := feedslog.NewLoggingFeedFetcher(&mock.FeedFetcher{
		FetchFn: func(_ context.Context) (feedtui.FeedData, error) {
			return feedtui.CapturesData([]feedtui.Capture{{Timestamp: "20230615"}}), nil
		},
	}, "archive", logger)

	data, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Captures, 1)
	assert.Contains(t, buf.String(), "feed=archive")
	assert.Contains(t, buf.String(), "captures=1")
}
