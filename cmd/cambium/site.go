//nolint:wrapcheck
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/cambium"
	"github.com/farcloser/cambium/internal/config"
	"github.com/farcloser/cambium/internal/integration/wordpress"
)

var (
	errMissingSite = errors.New("no site URL: pass one as an argument or --url, set WORDPRESS_URL, or fill [site] in cambium.toml")
	errTooManyArgs = errors.New("expected at most one argument: the site URL")
)

// siteFlags are the connection flags shared by every single-site command.
// Flags win over the environment, the environment over cambium.toml.
func siteFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Usage:   "Site base URL, e.g. https://blog.example.com",
			Sources: cli.EnvVars("WORDPRESS_URL"),
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "WordPress user the application password belongs to",
			Sources: cli.EnvVars("WORDPRESS_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "app-password",
			Aliases: []string{"p"},
			Usage:   "WordPress application password; empty means anonymous (published content only)",
			Sources: cli.EnvVars("WORDPRESS_APP_PASSWORD"),
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to cambium.toml (default: ./cambium.toml when present)",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "Budget for the whole fetch stage, in seconds",
		},
		&cli.IntFlag{
			Name:  "rate",
			Usage: "API requests per second",
		},
	}
}

// resolveOptions layers the audit options: stock defaults, then
// cambium.toml, then explicit flags.
func resolveOptions(cmd *cli.Command) (*config.Config, cambium.Options, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, cambium.Options{}, err
	}

	opts := cfg.Options()

	if timeout := cmd.Int("timeout"); timeout > 0 {
		opts.FetchTimeout = time.Duration(timeout) * time.Second
	}

	return cfg, opts, nil
}

func buildClient(cmd *cli.Command, cfg *config.Config) (*wordpress.Client, string, error) {
	if cmd.NArg() > 1 {
		return nil, "", fmt.Errorf("%w: got %d", errTooManyArgs, cmd.NArg())
	}

	site := cmd.String("url")
	if cmd.NArg() == 1 {
		site = cmd.Args().First()
	}

	if site == "" {
		site = cfg.Site.URL
	}

	if site == "" {
		return nil, "", errMissingSite
	}

	username := cmd.String("username")
	if username == "" {
		username = cfg.Site.Username
	}

	password := cmd.String("app-password")
	if password == "" {
		password = cfg.Site.AppPassword
	}

	perSecond := cfg.Fetch.RequestsPerSecond
	if rate := cmd.Int("rate"); rate > 0 {
		perSecond = float64(rate)
	}

	client, err := wordpress.New(wordpress.Config{
		BaseURL:           site,
		Username:          username,
		AppPassword:       password,
		RequestsPerSecond: perSecond,
	})
	if err != nil {
		return nil, "", err
	}

	return client, site, nil
}
