package bird_test

import (
	"testing"

	"github.com/feedtui/feedtui/bird"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchResults(t *testing.T) {
	t.Parallel()

	t.Run("parses separated posts", func(t *testing.T) {
		t.Parallel()

		input := "@user1: This is a post\n" +
			"URL: https://twitter.com/user1/status/123\n" +
			"---\n" +
			"@user2: Another post\n" +
			"URL: https://twitter.com/user2/status/456"

		posts := bird.ParseSearchResults(input)
		require.Len(t, posts, 2)

		assert.Equal(t, "user1", posts[0].Author)
		assert.Equal(t, "This is a post", posts[0].Text)
		assert.Equal(t, "https://twitter.com/user1/status/123", posts[0].URL)
		assert.Equal(t, posts[0].URL, posts[0].ID)

		assert.Equal(t, "user2", posts[1].Author)
	})

	t.Run("joins multi-line text", func(t *testing.T) {
		t.Parallel()

		input := "@user1: This is a long post\n" +
			"that spans multiple lines\n" +
			"URL: https://twitter.com/user1/status/123"

		posts := bird.ParseSearchResults(input)
		require.Len(t, posts, 1)
		assert.Equal(t, "This is a long post that spans multiple lines", posts[0].Text)
	})

	t.Run("drops posts without a URL", func(t *testing.T) {
		t.Parallel()

		input := "@user1: No link here\n" +
			"---\n" +
			"@user2: Has one\n" +
			"https://twitter.com/user2/status/456"

		posts := bird.ParseSearchResults(input)
		require.Len(t, posts, 1)
		assert.Equal(t, "user2", posts[0].Author)
	})

	t.Run("author line without colon is skipped", func(t *testing.T) {
		t.Parallel()

		input := "@user1\n" +
			"stray line\n" +
			"@user2: Real post\n" +
			"URL: https://twitter.com/user2/status/456"

		posts := bird.ParseSearchResults(input)
		require.Len(t, posts, 1)
		assert.Equal(t, "user2", posts[0].Author)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, bird.ParseSearchResults(""))
	})
}

func TestParseMentions(t *testing.T) {
	t.Parallel()

	input := "@friend: hey, saw your post\nURL: https://twitter.com/friend/status/789"
	posts := bird.ParseMentions(input)
	require.Len(t, posts, 1)
	assert.Equal(t, "friend", posts[0].Author)
}
