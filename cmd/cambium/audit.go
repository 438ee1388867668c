//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/cambium"
)

func auditCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "checks",
			Aliases: []string{"C"},
			Usage:   "Comma-separated dimensions or presets: all, content, structure, seo, design, media, writing-style, language, technical",
			Value:   "all",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: console, json, markdown",
			Value:   "console",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"D"},
			Usage:   "Include all raw analyzer data in output",
		},
	}
	flags = append(flags, siteFlags()...)

	return &cli.Command{
		Name:      "audit",
		Usage:     "Audit a WordPress site for content, structure and SEO health",
		ArgsUsage: "[url]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			checks, err := parseChecks(cmd.String("checks"))
			if err != nil {
				return err
			}

			cfg, opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			opts.Checks = checks

			client, site, err := buildClient(cmd, cfg)
			if err != nil {
				return err
			}

			audit, err := cambium.Run(ctx, client, opts)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			return outputAudit(site, audit, cmd.String("format"), cmd.Bool("debug"))
		},
	}
}

//nolint:gochecknoglobals
var checkNames = map[string]cambium.Check{
	"content":       cambium.CheckContent,
	"structure":     cambium.CheckStructure,
	"seo":           cambium.CheckSEO,
	"design":        cambium.CheckDesign,
	"media":         cambium.CheckMedia,
	"writing-style": cambium.CheckWriting,
	"language":      cambium.CheckLanguage,
	"technical":     cambium.CheckTechnical,
	// Presets.
	"all": cambium.ChecksAll,
}

func parseChecks(raw string) (cambium.Check, error) {
	var result cambium.Check

	for name := range strings.SplitSeq(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		check, ok := checkNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown check %q", name)
		}

		result |= check
	}

	if result == 0 {
		return cambium.ChecksAll, nil
	}

	return result, nil
}
