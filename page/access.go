// Package page provides access to the watch page a transcript is scraped
// from. The acquisition pipeline never touches the page directly; it goes
// through the Access interface so that tests can substitute a mock and so
// the same pipeline can run against a live browser bridge or a plain HTTP
// rendition of the page.
package page

import (
	"context"
	"errors"
	"time"
)

// ErrClickUnsupported is returned by Access implementations that cannot
// interact with the player (anything without a live renderer).
var ErrClickUnsupported = errors.New("page: click not supported by this access implementation")

// Access is the capability the pipeline needs from the host page: read-only
// DOM and source access, same-origin fetches, and a single simulated click
// on the captions toggle.
type Access interface {
	// Source returns the raw markup of the loaded page.
	Source(ctx context.Context) (string, error)

	// Elements returns the text content of every node matching the selector.
	Elements(ctx context.Context, selector string) ([]string, error)

	// Click simulates a click on the first node matching the selector.
	Click(ctx context.Context, selector string) error

	// Fetch performs a GET against a caption-serving endpoint and returns
	// the response body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Sleeper is the fixed-delay timer primitive used by the rendered-caption
// strategy. Tests provide a no-op implementation so they run without
// wall-clock delay.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// StandardSleeper waits on the wall clock, honoring context cancellation.
type StandardSleeper struct{}

// Sleep blocks for d or until ctx is done, whichever comes first.
func (StandardSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
