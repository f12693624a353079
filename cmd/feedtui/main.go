package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/feedtui/feedtui"
	"github.com/feedtui/feedtui/goquery"
	feedhttp "github.com/feedtui/feedtui/http"
	feedslog "github.com/feedtui/feedtui/slog"
	"github.com/feedtui/feedtui/trafilatura"
	"github.com/feedtui/feedtui/wayback"
	"golang.org/x/time/rate"
)

// archiveRPS bounds requests per second against the archive host, on
// top of the pipeline's concurrency cap.
const archiveRPS = 5.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("feedtui"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'feedtui --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "archive" {
		level := slog.LevelWarn
		if cli.Archive.Verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		var client feedtui.Fetcher = feedhttp.NewFetcher(
			feedhttp.WithTimeout(cli.Archive.Timeout),
		)
		if cli.Archive.Verbose {
			client = feedslog.NewLoggingFetcher(client, logger)
		}
		defer client.Close()

		deps.Archive = &wayback.Feed{
			Query:       cli.Archive.Query,
			MaxItems:    cli.Archive.Limit,
			Client:      client,
			Extractor:   feedtui.TextExtractors{goquery.NewExtractor(), trafilatura.NewExtractor()},
			Concurrency: cli.Archive.Concurrency,
			Limiter:     rate.NewLimiter(rate.Limit(archiveRPS), 1),
			Logger:      logger,
		}

		return kongCtx.Run(deps)
	}

	return kongCtx.Run(deps)
}
