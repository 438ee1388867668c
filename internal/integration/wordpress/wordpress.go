// Package wordpress is the REST API client the audit fetches its corpus
// through. It speaks the wp/v2 namespace with application-password basic
// auth and paginates collection endpoints.
package wordpress

import "time"

const (
	namespace = "wp/v2"

	// WordPress rejects per_page above 100 with a 400.
	maxPageSize = 100

	// Public shared hosts throttle aggressively; stay polite by default.
	defaultRatePerSecond = 4.0
	defaultBurst         = 4

	// Per-request bound. The whole-fetch budget is the caller's context.
	defaultTimeout = 30 * time.Second
)
