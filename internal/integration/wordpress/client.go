package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/farcloser/primordium/fault"
	"golang.org/x/time/rate"

	"github.com/farcloser/cambium/internal/types"
)

// ErrAuth marks a 401 or 403 from the API: the endpoint exists but the
// credentials are missing, wrong, or under-privileged.
var ErrAuth = errors.New("authentication required or rejected")

// Config carries the connection settings for a site.
type Config struct {
	// BaseURL is the site root, e.g. https://blog.example.com.
	BaseURL string
	// Username and AppPassword authenticate via basic auth. Both empty
	// means anonymous access: drafts, settings, plugins, themes and users
	// will be rejected by the server.
	Username    string
	AppPassword string

	// RequestsPerSecond throttles API calls. Zero means the default.
	RequestsPerSecond float64
	// Timeout bounds a single request. Zero means the default.
	Timeout time.Duration
	// PageSize is the per_page value for collection endpoints. Zero means
	// the WordPress maximum.
	PageSize int
}

// Client is a wp/v2 REST client for a single site.
type Client struct {
	base     *url.URL
	username string
	password string
	client   *http.Client
	limiter  *rate.Limiter
	pageSize int
}

// Index is the REST root document at /wp-json/, the only endpoint that is
// always public. It doubles as the settings fallback for anonymous audits.
type Index struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Home        string   `json:"home"`
	Namespaces  []string `json:"namespaces"`
}

// New validates the configuration and returns a client. No request is made;
// reachability is checked by Ping.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: site base URL", fault.ErrMissingRequirements)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL must be absolute (http or https): %q", fault.ErrMissingRequirements, cfg.BaseURL)
	}

	base.Path = strings.TrimRight(base.Path, "/")
	base.RawQuery = ""
	base.Fragment = ""

	perSecond := cfg.RequestsPerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return &Client{
		base:     base,
		username: cfg.Username,
		password: cfg.AppPassword,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(perSecond), defaultBurst),
		pageSize: pageSize,
	}, nil
}

// Ping fetches the REST index and verifies the wp/v2 namespace is exposed.
func (c *Client) Ping(ctx context.Context) (*Index, error) {
	endpoint := c.base.JoinPath("wp-json")

	var index Index
	if _, err := c.get(ctx, endpoint, &index); err != nil {
		return nil, err
	}

	if !slices.Contains(index.Namespaces, namespace) {
		return nil, fmt.Errorf("%w: %s does not expose the %s REST namespace", fault.ErrMissingRequirements, c.base.Host, namespace)
	}

	return &index, nil
}

// Settings fetches the site options. Requires authentication.
func (c *Client) Settings(ctx context.Context) (*types.Settings, error) {
	var settings types.Settings
	if _, err := c.get(ctx, c.endpoint("settings", nil), &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Posts fetches every post with the given status ("publish", "draft", ...).
// Non-publish statuses require authentication.
func (c *Client) Posts(ctx context.Context, status string) ([]types.Post, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	return collect[types.Post](ctx, c, "posts", query, 0)
}

// Pages fetches every page.
func (c *Client) Pages(ctx context.Context) ([]types.Page, error) {
	return collect[types.Page](ctx, c, "pages", nil, 0)
}

// Media fetches attachments, newest first, up to limit items. A zero limit
// fetches the whole library.
func (c *Client) Media(ctx context.Context, limit int) ([]types.MediaItem, error) {
	return collect[types.MediaItem](ctx, c, "media", nil, limit)
}

// Categories fetches every category term.
func (c *Client) Categories(ctx context.Context) ([]types.Term, error) {
	return collect[types.Term](ctx, c, "categories", nil, 0)
}

// Tags fetches every tag term.
func (c *Client) Tags(ctx context.Context) ([]types.Term, error) {
	return collect[types.Term](ctx, c, "tags", nil, 0)
}

// Users fetches the site authors visible to the credentials.
func (c *Client) Users(ctx context.Context) ([]types.User, error) {
	return collect[types.User](ctx, c, "users", nil, 0)
}

// Plugins fetches installed plugins. Requires authentication.
func (c *Client) Plugins(ctx context.Context) ([]types.Plugin, error) {
	return collect[types.Plugin](ctx, c, "plugins", nil, 0)
}

// Themes fetches installed themes. Requires authentication.
func (c *Client) Themes(ctx context.Context) ([]types.Theme, error) {
	return collect[types.Theme](ctx, c, "themes", nil, 0)
}

// collect drains a paginated collection endpoint. WordPress reports the page
// count in the X-WP-TotalPages header; a short batch also ends the walk, so
// a missing header degrades safely.
func collect[T any](ctx context.Context, c *Client, path string, query url.Values, limit int) ([]T, error) {
	perPage := c.pageSize
	if limit > 0 && limit < perPage {
		perPage = limit
	}

	var all []T

	for page := 1; ; page++ {
		pageQuery := url.Values{}
		for key, values := range query {
			pageQuery[key] = values
		}

		pageQuery.Set("per_page", strconv.Itoa(perPage))
		pageQuery.Set("page", strconv.Itoa(page))

		var batch []T

		header, err := c.get(ctx, c.endpoint(path, pageQuery), &batch)
		if err != nil {
			return nil, err
		}

		all = append(all, batch...)

		if limit > 0 && len(all) >= limit {
			return all[:limit], nil
		}

		totalPages, _ := strconv.Atoi(header.Get("X-WP-TotalPages"))
		if len(batch) < perPage || (totalPages > 0 && page >= totalPages) {
			return all, nil
		}
	}
}

func (c *Client) endpoint(path string, query url.Values) *url.URL {
	endpoint := c.base.JoinPath("wp-json", "wp", "v2", path)
	endpoint.RawQuery = query.Encode()

	return endpoint
}

func (c *Client) get(ctx context.Context, endpoint *url.URL, out any) (http.Header, error) {
	slog.Debug("wordpress.get", "url", endpoint.String())

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, transportError(err, endpoint.Path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, endpoint.Path, err)
	}

	req.Header.Set("Accept", "application/json")

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, transportError(err, endpoint.Path)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s returned %s", ErrAuth, endpoint.Path, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s returned %s", fault.ErrReadFailure, endpoint.Path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrInvalidJSON, endpoint.Path, err)
	}

	return resp.Header, nil
}

// transportError classifies a request failure: deadline overruns become
// timeouts, everything else a read failure.
func transportError(err error, path string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", fault.ErrTimeout, path, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %s: %w", fault.ErrTimeout, path, err)
	}

	return fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, path, err)
}
