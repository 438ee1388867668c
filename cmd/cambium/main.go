package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/cambium/version"
)

func main() {
	ctx := context.Background()

	// Credentials may live in a local .env; absence is fine.
	_ = godotenv.Load()

	appl := &cli.Command{
		Name:    version.Name(),
		Usage:   "WordPress content audit tool",
		Version: version.Version() + " " + version.Commit(),
		Commands: []*cli.Command{
			auditCommand(),
			profileCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
