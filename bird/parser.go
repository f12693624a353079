// Package bird parses the textual output of the external bird CLI
// used for searching live posts. The CLI invocation itself is an
// external collaborator; only its output format is understood here.
package bird

import (
	"strings"

	"github.com/feedtui/feedtui"
)

// pending accumulates one post while its lines are being consumed.
type pending struct {
	author string
	text   string
	url    string
	active bool
}

// ParseSearchResults parses search output of the form:
//
//	@username: Post text
//	URL: https://twitter.com/...
//	---
//
// Posts without a URL are dropped. Text spanning multiple lines is
// joined with single spaces. The parser is total; unrecognized lines
// outside a post block are ignored.
func ParseSearchResults(output string) []feedtui.Post {
	var posts []feedtui.Post
	var cur pending

	flush := func() {
		if cur.active && cur.url != "" {
			posts = append(posts, feedtui.Post{
				ID:     cur.url,
				Author: cur.author,
				Text:   cur.text,
				URL:    cur.url,
			})
		}
		cur = pending{}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "@"):
			flush()
			author, text, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			cur = pending{
				author: strings.TrimPrefix(author, "@"),
				text:   strings.TrimSpace(text),
				active: true,
			}

		case strings.HasPrefix(line, "URL:") || strings.HasPrefix(line, "http"):
			if cur.active {
				cur.url = strings.TrimSpace(strings.TrimPrefix(line, "URL:"))
			}

		case line == "---" || line == "":
			flush()

		default:
			// Continuation of post text.
			if cur.active {
				if cur.text != "" {
					cur.text += " "
				}
				cur.text += line
			}
		}
	}

	flush()
	return posts
}

// ParseMentions parses mentions output, which shares the search
// results format.
func ParseMentions(output string) []feedtui.Post {
	return ParseSearchResults(output)
}
