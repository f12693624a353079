package feedtui

import "context"

// FeedKind identifies a FeedData variant.
type FeedKind int

// Feed data variants.
const (
	KindLoading FeedKind = iota
	KindError
	KindCaptures
	KindPosts
)

// FeedData is the closed sum of feed payloads delivered to widgets.
// Exactly one variant is populated, selected by Kind.
type FeedData struct {
	Kind     FeedKind
	Captures []Capture
	Posts    []Post
	Err      string
}

// LoadingData returns the loading variant.
func LoadingData() FeedData {
	return FeedData{Kind: KindLoading}
}

// ErrorData returns the error variant with a user-facing message.
func ErrorData(msg string) FeedData {
	return FeedData{Kind: KindError, Err: msg}
}

// CapturesData returns the archived-post variant.
func CapturesData(items []Capture) FeedData {
	return FeedData{Kind: KindCaptures, Captures: items}
}

// PostsData returns the live-post variant.
func PostsData(items []Post) FeedData {
	return FeedData{Kind: KindPosts, Posts: items}
}

// FeedFetcher retrieves the current contents of one feed. Fetchers
// share no partial implementation; each feed kind provides its own.
type FeedFetcher interface {
	// Fetch performs all network work for one feed refresh. Repeated
	// calls re-issue the work; results are never cached.
	Fetch(ctx context.Context) (FeedData, error)
}
