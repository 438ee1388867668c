//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/cambium"
	"github.com/farcloser/cambium/internal/profile"
)

var errUnknownBlock = errors.New(`unknown block: want "system", "content", or "seo"`)

func profileCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "block",
			Aliases: []string{"b"},
			Usage:   "Single block to print: system, content, seo (default: all three)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Directory to write the blocks as markdown files instead of stdout",
		},
	}
	flags = append(flags, siteFlags()...)

	return &cli.Command{
		Name:      "profile",
		Usage:     "Audit a WordPress site and render its writing guidelines",
		ArgsUsage: "[url]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			client, _, err := buildClient(cmd, cfg)
			if err != nil {
				return err
			}

			audit, err := cambium.Run(ctx, client, opts)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			return writeProfile(audit.Profile, cmd.String("block"), cmd.String("output"))
		},
	}
}

type profileBlock struct {
	name string
	file string
	text string
}

func writeProfile(siteProfile *profile.SiteProfile, block, dir string) error {
	blocks := []profileBlock{
		{name: "system", file: "system-prompt.md", text: siteProfile.SystemPrompt},
		{name: "content", file: "content-guidelines.md", text: siteProfile.ContentGuidelines},
		{name: "seo", file: "seo-guidelines.md", text: siteProfile.SEOGuidelines},
	}

	if block != "" {
		selected := blocks[:0]

		for _, b := range blocks {
			if b.name == block {
				selected = append(selected, b)
			}
		}

		if len(selected) == 0 {
			return fmt.Errorf("%w: %q", errUnknownBlock, block)
		}

		blocks = selected
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		for _, b := range blocks {
			path := filepath.Join(dir, b.file)
			if err := os.WriteFile(path, []byte(b.text+"\n"), 0o644); err != nil { //nolint:gosec // guideline text, not a secret
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}

		fmt.Fprintf(os.Stderr, "Wrote %d profile blocks to %s\n", len(blocks), dir)

		return nil
	}

	for i, b := range blocks {
		if len(blocks) > 1 {
			if i > 0 {
				fmt.Println()
			}

			fmt.Printf("--- %s ---\n\n", b.file)
		}

		fmt.Println(b.text)
	}

	return nil
}
