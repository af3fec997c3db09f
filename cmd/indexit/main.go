// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/indexit"
	"github.com/poiesic/indexit/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "indexit",
		Usage: "Document indexing and semantic retrieval over vector store backends",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Embed documents and persist them into the configured backend",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "sample",
						Aliases: []string{"s"},
						Usage:   "Ingest the built-in sample corpus",
					},
					&cli.StringFlag{
						Name:  "docs-file",
						Usage: "Path to a JSON documents file (implies --sample)",
					},
					&cli.StringFlag{
						Name:    "provider",
						Aliases: []string{"p"},
						Usage:   "Override the configured backend provider",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Retrieve the documents closest to a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
					},
					&cli.StringFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "Metadata filter as a JSON object",
					},
					&cli.StringFlag{
						Name:    "provider",
						Aliases: []string{"p"},
						Usage:   "Override the configured backend provider",
					},
				},
			},
			{
				Name:   "provision",
				Usage:  "Create schema objects for every configured backend",
				Action: provisionCommand,
			},
		},
	}
}

func ingestCommand(c *cli.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Bool("sample") {
		cfg.UseSampleDocs = true
	}
	if docsFile := c.String("docs-file"); docsFile != "" {
		cfg.UseSampleDocs = true
		cfg.DocsFile = docsFile
	}
	if provider := c.String("provider"); provider != "" {
		cfg.Provider = config.Provider(strings.ToLower(provider))
	}

	client, err := indexit.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	if err := client.Ingest(context.Background()); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("%s into %s\n", boldGreen("Ingest complete"), cfg.Provider)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if count := c.Int("count"); count > 0 {
		cfg.DocumentCount = count
	}
	if rawFilter := c.String("filter"); rawFilter != "" {
		var filter map[string]any
		if err := json.Unmarshal([]byte(rawFilter), &filter); err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		cfg.Filter = filter
	}
	if provider := c.String("provider"); provider != "" {
		cfg.Provider = config.Provider(strings.ToLower(provider))
	}

	client, err := indexit.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	matches, err := client.Search(context.Background(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("Found %d hits\n", len(matches))
	for i, hit := range matches {
		fmt.Printf("%d: '%s' (%s)[%0.3f]\n", i, hit.Document.Content, boldCyan(hit.Document.ID), hit.Score)
	}
	return nil
}

func provisionCommand(c *cli.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := indexit.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	report, runErr := client.Provision(context.Background())

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	if len(report) == 0 {
		fmt.Println("No backends configured")
	}
	for _, res := range report {
		if res.Err != nil {
			fmt.Printf("%s %s: %v\n", red("✗"), res.Provider, res.Err)
		} else {
			fmt.Printf("%s %s provisioned\n", green("✓"), res.Provider)
		}
	}

	return runErr
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
