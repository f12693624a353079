package feedtui

// Post represents one live social post, as parsed from the posting
// CLI's textual search output.
type Post struct {
	ID     string
	Author string
	Text   string
	URL    string
}
