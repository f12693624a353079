package main

import (
	"fmt"

	"github.com/feedtui/feedtui"
)

// Run executes the archive command.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	data, err := deps.Archive.Fetch(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedtui.ErrorMessage(err))
		return err
	}

	if len(data.Captures) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived posts found.")
		return nil
	}

	for i, capture := range data.Captures {
		preview := capture.Text
		if preview == "" {
			preview = capture.OriginalURL
		}
		author := capture.Author
		if author == "" {
			author = "unknown"
		}

		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, preview)
		fmt.Fprintf(deps.Stdout, "   %s | %s\n", author, capture.DateDisplay)
		fmt.Fprintf(deps.Stdout, "   %s\n", capture.ArchiveURL)
	}

	return nil
}
