package feedtui

import "strings"

// Capture represents one historical snapshot of a post stored by a
// web archive. Captures are immutable value objects constructed once
// per fetch; they carry no identity beyond their position in the
// result list.
type Capture struct {
	// Timestamp is the raw archive timestamp, an opaque digit string
	// of the form YYYYMMDDHHMMSS with length-dependent precision.
	Timestamp string

	// OriginalURL is the post URL as archived.
	OriginalURL string

	// ArchiveURL locates the archived page body.
	ArchiveURL string

	// Text is the recovered post text. Empty until enrichment
	// succeeds; empty after enrichment means no extraction strategy
	// matched, not that the pipeline failed.
	Text string

	// Author is the post author handle with a leading "@". Empty when
	// the URL host is not a recognized social domain.
	Author string

	// DateDisplay is the human-readable form of Timestamp.
	DateDisplay string
}

// FormatTimestamp renders an archive timestamp as a readable date.
// Timestamps of at least 8 digits become "YYYY-MM-DD"; at least 12
// digits additionally append " HH:MM". Shorter inputs are returned
// unmodified.
func FormatTimestamp(ts string) string {
	if len(ts) < 8 {
		return ts
	}
	out := ts[0:4] + "-" + ts[4:6] + "-" + ts[6:8]
	if len(ts) >= 12 {
		out += " " + ts[8:10] + ":" + ts[10:12]
	}
	return out
}

// authorHosts are the recognized host path prefixes for author
// extraction.
var authorHosts = []string{"twitter.com/", "x.com/"}

// ExtractAuthor derives the author handle from a post URL like
// https://twitter.com/{handle}/status/123. The scheme and an optional
// "www." prefix are ignored. Returns "" when the host is not
// recognized or the handle segment is empty.
func ExtractAuthor(rawURL string) string {
	path := rawURL
	if rest, ok := strings.CutPrefix(path, "https://"); ok {
		path = rest
	} else if rest, ok := strings.CutPrefix(path, "http://"); ok {
		path = rest
	}
	path = strings.TrimPrefix(path, "www.")

	for _, host := range authorHosts {
		rest, ok := strings.CutPrefix(path, host)
		if !ok {
			continue
		}
		handle, _, _ := strings.Cut(rest, "/")
		if handle == "" {
			return ""
		}
		return "@" + handle
	}
	return ""
}
