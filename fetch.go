package cambium

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/farcloser/cambium/internal/integration/wordpress"
	"github.com/farcloser/cambium/internal/types"
	"github.com/farcloser/cambium/version"
)

// ErrConnection marks an unreachable site or an endpoint that does not
// expose the WordPress REST API. It is the only fatal fetch error; any
// single collection failing degrades the snapshot instead.
var ErrConnection = errors.New("site unreachable")

// Fetcher is the read surface Snapshot pulls from. *wordpress.Client
// implements it; tests substitute a stub.
type Fetcher interface {
	Ping(ctx context.Context) (*wordpress.Index, error)
	Settings(ctx context.Context) (*types.Settings, error)
	Posts(ctx context.Context, status string) ([]types.Post, error)
	Pages(ctx context.Context) ([]types.Page, error)
	Media(ctx context.Context, limit int) ([]types.MediaItem, error)
	Categories(ctx context.Context) ([]types.Term, error)
	Tags(ctx context.Context) ([]types.Term, error)
	Users(ctx context.Context) ([]types.User, error)
	Plugins(ctx context.Context) ([]types.Plugin, error)
	Themes(ctx context.Context) ([]types.Theme, error)
}

// Snapshot probes the site, then fetches every collection concurrently
// within opts.FetchTimeout. A failed probe is fatal and wraps
// ErrConnection. Any other fetch failing leaves its collection empty and
// records the collection name in Degraded, so a partial snapshot still
// audits end to end.
func Snapshot(ctx context.Context, fetcher Fetcher, opts Options) (*types.Snapshot, error) {
	applyDefaults(&opts)

	ctx, cancel := context.WithTimeout(ctx, opts.FetchTimeout)
	defer cancel()

	index, err := fetcher.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	snapshot := &types.Snapshot{}

	// Every fetch writes a distinct snapshot field; only Degraded is
	// shared across goroutines.
	var mu sync.Mutex

	fetches := pool.New()
	guarded := func(collection string, fetch func() error) {
		fetches.Go(func() {
			err := fetch()
			if err == nil {
				return
			}

			slog.Debug("collection degraded", "collection", collection, "error", err)

			mu.Lock()
			snapshot.Degraded = append(snapshot.Degraded, collection)
			mu.Unlock()
		})
	}

	guarded("settings", func() error {
		settings, err := fetcher.Settings(ctx)
		if err != nil {
			return err
		}

		snapshot.Settings = *settings

		return nil
	})
	guarded("posts", assign(&snapshot.Posts, func() ([]types.Post, error) {
		return fetcher.Posts(ctx, "publish")
	}))
	guarded("drafts", assign(&snapshot.Drafts, func() ([]types.Post, error) {
		return fetcher.Posts(ctx, "draft")
	}))
	guarded("pages", assign(&snapshot.Pages, func() ([]types.Page, error) {
		return fetcher.Pages(ctx)
	}))
	guarded("media", assign(&snapshot.Media, func() ([]types.MediaItem, error) {
		return fetcher.Media(ctx, opts.MediaPageSize)
	}))
	guarded("categories", assign(&snapshot.Categories, func() ([]types.Term, error) {
		return fetcher.Categories(ctx)
	}))
	guarded("tags", assign(&snapshot.Tags, func() ([]types.Term, error) {
		return fetcher.Tags(ctx)
	}))
	guarded("users", assign(&snapshot.Users, func() ([]types.User, error) {
		return fetcher.Users(ctx)
	}))
	guarded("plugins", assign(&snapshot.Plugins, func() ([]types.Plugin, error) {
		return fetcher.Plugins(ctx)
	}))
	guarded("themes", assign(&snapshot.Themes, func() ([]types.Theme, error) {
		return fetcher.Themes(ctx)
	}))

	fetches.Wait()

	slices.Sort(snapshot.Degraded)

	// The REST index is always public. Backfill the identity fields from
	// it when the settings endpoint rejected us.
	if snapshot.Settings.Title == "" {
		snapshot.Settings.Title = index.Name
	}

	if snapshot.Settings.Description == "" {
		snapshot.Settings.Description = index.Description
	}

	if snapshot.Settings.URL == "" {
		snapshot.Settings.URL = index.URL
	}

	return snapshot, nil
}

// Run snapshots the site, analyzes it, and stamps the audit with a run id,
// the tool version and timing.
func Run(ctx context.Context, fetcher Fetcher, opts Options) (*Audit, error) {
	start := time.Now()

	snapshot, err := Snapshot(ctx, fetcher, opts)
	if err != nil {
		return nil, err
	}

	audit := Analyze(snapshot, opts)
	audit.Meta.ID = uuid.NewString()
	audit.Meta.Version = version.Version()
	audit.Meta.GeneratedAt = time.Now().UTC()
	audit.Meta.Duration = time.Since(start)

	return audit, nil
}

func assign[T any](target *[]T, fetch func() ([]T, error)) func() error {
	return func() error {
		items, err := fetch()
		if err != nil {
			return err
		}

		*target = items

		return nil
	}
}
