package trg

import (
	"time"
)

// Config holds the crawl parameters for the Royal Gazette search portal.
type Config struct {
	// SearchURL is the address of the portal's search result page.
	SearchURL string

	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	Headless       bool

	// FirstPageWait bounds the wait for the first result marker; when it
	// elapses the search is reported as having no results.
	FirstPageWait time.Duration

	// PageWait bounds the per-page result-marker wait inside the
	// pagination loop. A timeout here ends the crawl with whatever has
	// been collected; a slow page is indistinguishable from the last
	// page by design.
	PageWait time.Duration

	// SettleDelay is the pause between filling the form and submitting
	// it, so validation listeners can run.
	SettleDelay time.Duration

	// MaxPages caps the number of visited pages when positive. Zero
	// keeps the portal's observed contract of unbounded traversal.
	MaxPages int
}

// DefaultConfig returns the crawl parameters observed to work against the
// live portal.
func DefaultConfig() Config {
	return Config{
		SearchURL:      "https://ratchakitcha.soc.go.th/search-result",
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		ViewportWidth:  1280,
		ViewportHeight: 800,
		Headless:       true,
		FirstPageWait:  5 * time.Second,
		PageWait:       10 * time.Second,
		SettleDelay:    200 * time.Millisecond,
		MaxPages:       0,
	}
}
