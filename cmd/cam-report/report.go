//nolint:wrapcheck
package main

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/cambium"
	"github.com/farcloser/cambium/internal/config"
	"github.com/farcloser/cambium/internal/integration/wordpress"
	"github.com/farcloser/cambium/internal/output"
	"github.com/farcloser/cambium/version"
)

const outputFile = "cambium-report.jsonl"

var errReportArgs = errors.New("expected exactly one argument: path to sites.yaml")

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Audit a fleet of WordPress sites and write a cambium JSONL report",
		ArgsUsage: "<sites.yaml>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "redact",
				Usage: "Strip site URLs and identity from the report",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of sites audited concurrently",
				Value:   4,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to cambium.toml applied to every site",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errReportArgs, cmd.NArg())
			}

			workers := max(cmd.Int("workers"), 1)

			return runReport(ctx, cmd.Args().First(), cmd.String("config"), cmd.Bool("redact"), workers)
		},
	}
}

func runReport(ctx context.Context, inventoryPath, configPath string, redact bool, workers int) error {
	sites, err := config.LoadSites(inventoryPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts := cfg.Options()

	fmt.Fprintf(os.Stderr, "Found %d sites to audit (%d workers)\n", len(sites), workers)

	// Audit sites concurrently.
	startTime := time.Now()
	results := make([]Record, len(sites))

	var progress atomic.Int64

	audits := pool.New().WithMaxGoroutines(workers)

	for idx, site := range sites {
		audits.Go(func() {
			results[idx] = auditSite(ctx, site, cfg, opts)

			done := progress.Add(1)
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, len(sites), site.Name)
		})
	}

	audits.Wait()

	// Write results in inventory order.
	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	failed := 0

	var totalFetch, totalAnalyze time.Duration

	for idx := range results {
		record := &results[idx]

		if record.Error != "" {
			failed++
		}

		if record.Timing != nil {
			totalFetch += millisToDuration(record.Timing.FetchMs)
			totalAnalyze += millisToDuration(record.Timing.AnalyzeMs)
		}

		if redact {
			record.Site = ""
			record.Name = fmt.Sprintf("site-%d", idx+1)
			redactAudit(record.Audit)
		}

		if err := enc.Encode(record); err != nil {
			slog.Error("writing record", "site", sites[idx].Name, "error", err)
		}
	}

	out.Close()

	// Compress.
	if err := compressFile(outputFile); err != nil {
		slog.Error("compressing report", "error", err)
	}

	elapsed := time.Since(startTime)
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60

	fmt.Fprintf(os.Stderr, "\nDone: %d sites in %dm %ds (%d failed)\n", len(sites), minutes, seconds, failed)
	fmt.Fprintf(os.Stderr, "Report written to %s (and %s.gz)\n", outputFile, outputFile)

	// Timing breakdown.
	audited := len(sites) - failed

	fmt.Fprintf(os.Stderr, "\n--- Timing ---\n")
	fmt.Fprintf(os.Stderr, "  Wall clock:  %s\n", elapsed.Truncate(time.Millisecond))
	fmt.Fprintf(os.Stderr, "  fetch:       %s (cumulative)\n", totalFetch.Truncate(time.Millisecond))
	fmt.Fprintf(os.Stderr, "  analysis:    %s (cumulative)\n", totalAnalyze.Truncate(time.Millisecond))

	if audited > 0 {
		fmt.Fprintf(os.Stderr, "  avg/site:    %s (fetch: %s, analyze: %s)\n",
			(totalFetch+totalAnalyze)/time.Duration(audited),
			totalFetch/time.Duration(audited),
			totalAnalyze/time.Duration(audited),
		)
	}

	// Print digest summary.
	fmt.Fprintln(os.Stderr)

	return runDigest(outputFile, "")
}

func auditSite(ctx context.Context, site config.SiteEntry, cfg *config.Config, opts cambium.Options) Record {
	siteStart := time.Now()
	timing := &RecordTiming{}

	client, err := wordpress.New(wordpress.Config{
		BaseURL:           site.URL,
		Username:          site.Username,
		AppPassword:       site.AppPassword,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
	})
	if err != nil {
		return Record{Site: site.URL, Name: site.Name, Error: fmt.Sprintf("invalid site: %v", err)}
	}

	// Fetch.
	fetchStart := time.Now()

	snapshot, err := cambium.Snapshot(ctx, client, opts)

	timing.FetchMs = durationMs(time.Since(fetchStart))

	if err != nil {
		return Record{Site: site.URL, Name: site.Name, Error: fmt.Sprintf("fetch failed: %v", err), Timing: timing}
	}

	// Analyze.
	analyzeStart := time.Now()

	audit := cambium.Analyze(snapshot, opts)

	timing.AnalyzeMs = durationMs(time.Since(analyzeStart))
	timing.TotalMs = durationMs(time.Since(siteStart))

	audit.Meta.ID = uuid.NewString()
	audit.Meta.Version = version.Version()
	audit.Meta.GeneratedAt = time.Now().UTC()
	audit.Meta.Duration = time.Since(siteStart)

	return Record{
		Site:   site.URL,
		Name:   site.Name,
		Audit:  output.AuditToMap(audit),
		Timing: timing,
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

func millisToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func compressFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // reading our own output file
	if err != nil {
		return err
	}

	gzFile, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer gzFile.Close()

	gzWriter := gzip.NewWriter(gzFile)

	if _, err := gzWriter.Write(data); err != nil {
		return err
	}

	return gzWriter.Close()
}

// redactAudit strips the fields that identify the site. The profile blocks
// interpolate the site identity into prose, so they go entirely.
func redactAudit(audit map[string]any) {
	if audit == nil {
		return
	}

	if meta, ok := audit["meta"].(map[string]any); ok {
		delete(meta, "site")
		delete(meta, "title")
	}

	if structure, ok := audit["structure"].(map[string]any); ok {
		delete(structure, "sample_link")
	}

	delete(audit, "profile")
}
