package feedtui

import "context"

// Fetcher retrieves page bodies from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body as
	// text. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
