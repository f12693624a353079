package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/feedtui/feedtui"
	main "github.com/feedtui/feedtui/cmd/feedtui"
	"github.com/feedtui/feedtui/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints recovered captures", func(t *testing.T) {
		t.Parallel()

		archive := &mock.FeedFetcher{
			FetchFn: func(_ context.Context) (feedtui.FeedData, error) {
				return feedtui.CapturesData([]feedtui.Capture{
					{
						OriginalURL: "https://twitter.com/testuser/status/123",
						ArchiveURL:  "https://web.archive.org/web/20230615143022id_/https://twitter.com/testuser/status/123",
						Text:        "just setting up my twttr",
						Author:      "@testuser",
						DateDisplay: "2023-06-15 14:30",
					},
					{
						OriginalURL: "https://twitter.com/testuser/status/456",
						ArchiveURL:  "https://web.archive.org/web/20230616090000id_/https://twitter.com/testuser/status/456",
						DateDisplay: "2023-06-16 09:00",
					},
				}), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Archive: archive,
		}

		err := (&main.ArchiveCmd{}).Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "1. just setting up my twttr")
		assert.Contains(t, output, "@testuser | 2023-06-15 14:30")
		// Captures without recovered text fall back to the post URL.
		assert.Contains(t, output, "2. https://twitter.com/testuser/status/456")
		assert.Contains(t, output, "unknown | 2023-06-16 09:00")
	})

	t.Run("reports empty results", func(t *testing.T) {
		t.Parallel()

		archive := &mock.FeedFetcher{
			FetchFn: func(_ context.Context) (feedtui.FeedData, error) {
				return feedtui.CapturesData(nil), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Archive: archive,
		}

		err := (&main.ArchiveCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No archived posts found.")
	})

	t.Run("surfaces index failures", func(t *testing.T) {
		t.Parallel()

		archive := &mock.FeedFetcher{
			FetchFn: func(_ context.Context) (feedtui.FeedData, error) {
				return feedtui.FeedData{}, feedtui.Errorf(feedtui.EUNAVAILABLE, "capture index: timeout")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Archive: archive,
		}

		err := (&main.ArchiveCmd{}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "capture index: timeout")
		assert.Empty(t, stdout.String())
	})
}
