package main

import (
	"context"
	"io"
	"time"

	"github.com/feedtui/feedtui"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Archive feedtui.FeedFetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Archive ArchiveCmd `cmd:"" help:"Fetch archived posts for a profile or search query"`
}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	Query       string        `arg:"" help:"Profile or search pattern, e.g. twitter.com/user*"`
	Limit       int           `short:"l" default:"10" help:"Maximum captures to return"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent capture fetch limit"`
	Timeout     time.Duration `default:"20s" help:"Per-request HTTP timeout"`
	Verbose     bool          `short:"v" help:"Log individual HTTP requests"`
}
