package trg

import (
	"context"
	"time"
)

// Session is the capability surface the form driver and the pagination
// crawler need from one exclusively-owned automation session. The rod
// implementation lives in browser.go; tests substitute fakes.
type Session interface {
	// Navigate loads url and waits for the DOM to be ready.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until the selector matches a visible element or
	// the timeout elapses.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// Click activates the element matched by selector.
	Click(ctx context.Context, selector string) error

	// SetField clears the matched control, sets value and raises both the
	// "input" and "change" signals so reactive validation on the page
	// registers the new value. A bare value assignment is known to be
	// ignored by the target page.
	SetField(ctx context.Context, selector, value string) error

	// TypeField clears the matched control and types value into it
	// through simulated keystrokes.
	TypeField(ctx context.Context, selector, value string) error

	// SetCheckboxGroup reconciles the whole checkbox set named by the
	// group's input name: boxes matching a wanted value are checked,
	// every other checked box is unchecked. The form retains state from
	// prior renders, so an additive selection is not enough. Matching is
	// against the sibling label text when byLabel is true, against the
	// input value otherwise.
	SetCheckboxGroup(ctx context.Context, name string, wanted []string, byLabel bool) error

	// Settle gives the page's validation listeners a short window to run
	// before submit.
	Settle(ctx context.Context, d time.Duration) error

	// Submit activates the submit control and awaits the resulting page
	// transition as one joined operation.
	Submit(ctx context.Context, selector string) error

	// HTML snapshots the rendered content of the current page.
	HTML(ctx context.Context) (string, error)

	// FindNextControl locates the next-page control under either of the
	// two observed pagination layouts. It returns nil when no usable
	// control exists, which ends the crawl.
	FindNextControl(ctx context.Context) (NextControl, error)

	// Release disposes of the session. It is idempotent, never panics and
	// swallows secondary failures; it must be called exactly once on
	// every exit path of a crawl.
	Release()
}

// NextControl is a located next-page control.
type NextControl interface {
	// Activate clicks the control and concurrently awaits the page
	// transition. The navigation wait is armed before the click is
	// issued, because the transition can begin before the click call
	// returns.
	Activate(ctx context.Context) error
}

// SessionFactory creates one isolated session per request.
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
