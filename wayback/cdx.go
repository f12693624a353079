package wayback

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/feedtui/feedtui"
)

// buildQuery normalizes a profile or search query into a post-detail
// URL pattern. Queries that already target a /status segment are used
// verbatim; anything else is scoped to per-post pages so the result
// budget is not spent on profile or media captures.
func buildQuery(query string) string {
	if strings.Contains(query, "/status") {
		return query
	}
	base := strings.TrimRight(query, "*")
	base = strings.TrimRight(base, "/")
	return base + "/status/*"
}

// indexURL builds the CDX index query. The limit is MaxItems+1
// because the first response row is a header. collapse=urlkey
// deduplicates multiple captures of the same post at the source.
func (f *Feed) indexURL() string {
	return fmt.Sprintf(
		"%s/cdx/search/cdx?url=%s&output=json&limit=%d&fl=timestamp,original,statuscode&filter=statuscode:200&collapse=urlkey",
		f.baseURL(),
		url.QueryEscape(buildQuery(f.Query)),
		f.MaxItems+1,
	)
}

// fetchIndex retrieves and decodes the capture index. The returned
// rows exclude the header row, which is always present and always
// skipped, even when it is the only row. Transport and decode
// failures abort the whole operation; no partial index is meaningful.
func (f *Feed) fetchIndex(ctx context.Context) ([][]string, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	body, err := f.Client.Fetch(ctx, f.indexURL())
	if err != nil {
		return nil, feedtui.Errorf(feedtui.EUNAVAILABLE, "capture index: %v", err)
	}

	var rows [][]string
	if err := json.Unmarshal([]byte(body), &rows); err != nil {
		return nil, feedtui.Errorf(feedtui.EINTERNAL, "capture index: undecodable body: %v", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}
