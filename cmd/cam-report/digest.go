package main

import (
	"bufio"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/urfave/cli/v3"
)

var errDigestArgs = errors.New("expected exactly one argument: path to report.jsonl")

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Produce a fleet summary from a cambium JSONL report",
		ArgsUsage: "<report.jsonl>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "code",
				Usage: "Show sites affected by a specific recommendation code (e.g., thin-content, alt-text)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errDigestArgs
			}

			return runDigest(cmd.Args().First(), cmd.String("code"))
		},
	}
}

func runDigest(reportPath, codeFilter string) error {
	records, err := readRecords(reportPath)
	if err != nil {
		return err
	}

	printDigest(records)

	if codeFilter != "" {
		printCodeDetail(records, codeFilter)
	}

	return nil
}

func readRecords(path string) ([]digestRecord, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer file.Close()

	var records []digestRecord

	scanner := bufio.NewScanner(file)

	const maxLineSize = 4 * 1024 * 1024 // profiles make for long lines
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	for scanner.Scan() {
		var rec digestRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			records = append(records, digestRecord{Error: "parse error"})

			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	return records, nil
}

//nolint:cyclop // sequential tally loops, one per section
func printDigest(records []digestRecord) {
	total := len(records)
	failed := 0
	nicheDist := map[string]int{}
	cadenceDist := map[string]int{}
	recDist := map[int]int{}
	degradedDist := map[string]int{}
	codeStats := map[string]*codeBreakdown{}

	for _, rec := range records {
		if rec.Error != "" || rec.Audit == nil {
			failed++

			continue
		}

		if c := rec.Audit.Content; c != nil {
			nicheDist[c.Niche]++
			cadenceDist[c.Cadence]++
		}

		recDist[len(rec.Audit.Recommendations)]++

		for _, collection := range rec.Audit.Meta.Degraded {
			degradedDist[collection]++
		}

		for _, r := range rec.Audit.Recommendations {
			breakdown, ok := codeStats[r.Code]
			if !ok {
				breakdown = &codeBreakdown{Code: r.Code, Check: r.Check}
				codeStats[r.Code] = breakdown
			}

			breakdown.Total++
		}
	}

	audited := total - failed

	fmt.Println("=== Cambium Report Digest ===")
	fmt.Println()
	fmt.Printf("Total sites:  %d\n", total)
	fmt.Printf("Failed:       %d\n", failed)
	fmt.Printf("Audited:      %d\n", audited)
	fmt.Println()

	fmt.Println("--- Niches ---")

	for _, entry := range sortedCounts(nicheDist) {
		fmt.Printf("  %-24s %d\n", entry.key, entry.count)
	}

	fmt.Println()

	fmt.Println("--- Publish Cadence ---")

	for _, entry := range sortedCounts(cadenceDist) {
		fmt.Printf("  %-24s %d\n", entry.key, entry.count)
	}

	fmt.Println()

	fmt.Println("--- Recommendations Per Site ---")

	maxRecs := 0
	for k := range recDist {
		if k > maxRecs {
			maxRecs = k
		}
	}

	for i := range maxRecs + 1 {
		if count, ok := recDist[i]; ok && count > 0 {
			fmt.Printf("  %d recommendations:  %d sites\n", i, count)
		}
	}

	fmt.Println()

	fmt.Println("--- Recommendations By Code ---")

	breakdowns := make([]*codeBreakdown, 0, len(codeStats))
	for _, bd := range codeStats {
		breakdowns = append(breakdowns, bd)
	}

	slices.SortFunc(breakdowns, func(a, b *codeBreakdown) int {
		return b.Total - a.Total
	})

	for _, bd := range breakdowns {
		fmt.Printf("  %-24s %d sites  (%s)\n", bd.Code, bd.Total, bd.Check)
	}

	if len(degradedDist) > 0 {
		fmt.Println()
		fmt.Println("--- Degraded Fetches ---")

		for _, entry := range sortedCounts(degradedDist) {
			fmt.Printf("  %-24s %d sites\n", entry.key, entry.count)
		}
	}
}

type keyCount struct {
	key   string
	count int
}

func sortedCounts(dist map[string]int) []keyCount {
	entries := make([]keyCount, 0, len(dist))
	for key, count := range dist {
		entries = append(entries, keyCount{key: key, count: count})
	}

	slices.SortFunc(entries, func(a, b keyCount) int {
		if a.count != b.count {
			return b.count - a.count
		}

		return cmp.Compare(a.key, b.key)
	})

	return entries
}

func printCodeDetail(records []digestRecord, code string) {
	fmt.Println()

	type siteEntry struct {
		site    string
		summary string
	}

	var entries []siteEntry

	for _, rec := range records {
		if rec.Error != "" || rec.Audit == nil {
			continue
		}

		for _, r := range rec.Audit.Recommendations {
			if r.Code != code {
				continue
			}

			site := rec.Name
			if site == "" {
				site = rec.Site
			}

			if site == "" {
				site = "(redacted)"
			}

			entries = append(entries, siteEntry{site: site, summary: r.Summary})
		}
	}

	if len(entries) == 0 {
		fmt.Printf("No sites affected by %s\n", code)

		return
	}

	fmt.Printf("=== %s: %d sites ===\n\n", code, len(entries))

	for _, entry := range entries {
		fmt.Printf("  %s\n", entry.site)
		fmt.Printf("    %s\n", entry.summary)
		fmt.Println()
	}
}
