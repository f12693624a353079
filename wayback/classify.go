package wayback

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/feedtui/feedtui"
)

// statusMarker separates the author path from the numeric post
// identifier in a post-detail URL.
const statusMarker = "/status/"

// artifactCutset terminates a candidate post identifier: query
// strings, URL-encoding artifacts and malformed trailing quotes.
const artifactCutset = `?%#"`

// postID extracts the numeric post identifier from an archived URL.
// Returns false for URLs that do not represent post-detail pages:
// missing marker, empty identifier, or an identifier that does not
// start with a decimal digit (profile and media pages share the same
// path shape).
func postID(original string) (string, bool) {
	_, after, found := strings.Cut(original, statusMarker)
	if !found {
		return "", false
	}
	id := after
	if i := strings.IndexAny(after, artifactCutset); i >= 0 {
		id = after[:i]
	}
	if id == "" || id[0] < '0' || id[0] > '9' {
		return "", false
	}
	return id, true
}

// classify decides whether one index row represents a genuine
// post-detail capture and derives the capture fields from it. It is
// total: rows are accepted or rejected, never errored. Short rows are
// rejected; the index response is untyped and variable-width on the
// wire.
func (f *Feed) classify(row []string) (feedtui.Capture, string, bool) {
	if len(row) < 3 {
		return feedtui.Capture{}, "", false
	}
	timestamp, original := row[0], row[1]

	id, ok := postID(original)
	if !ok {
		return feedtui.Capture{}, "", false
	}

	return feedtui.Capture{
		Timestamp:   timestamp,
		OriginalURL: original,
		ArchiveURL:  fmt.Sprintf("%s/web/%s%s/%s", f.baseURL(), timestamp, rawSuffix, original),
		Author:      feedtui.ExtractAuthor(original),
		DateDisplay: feedtui.FormatTimestamp(timestamp),
	}, id, true
}

// classifyRows filters index rows into captures, preserving index
// order and capping the result at MaxItems. Rows are additionally
// deduplicated by post identifier; collapse=urlkey upstream is
// best-effort and still lets encoding variants of the same post
// through.
func (f *Feed) classifyRows(rows [][]string) []feedtui.Capture {
	captures := make([]feedtui.Capture, 0, f.MaxItems)
	seen := make(map[uint64]struct{}, f.MaxItems)

	for _, row := range rows {
		capture, id, ok := f.classify(row)
		if !ok {
			continue
		}

		key := xxhash.Sum64String(id)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		captures = append(captures, capture)
		if f.MaxItems > 0 && len(captures) >= f.MaxItems {
			break
		}
	}
	return captures
}
