// Package strategy implements the ordered extraction techniques the
// acquisition pipeline tries against a watch page. Each strategy is
// self-contained: it either produces raw transcript text or fails, and a
// failure never stops the chain.
package strategy

import (
	"context"

	"github.com/clipsage/transcript-scraper/config"
	"github.com/clipsage/transcript-scraper/page"
)

// Strategy is one technique for obtaining transcript text. Attempt returns
// the raw (un-normalized) text; the driver decides whether it is long enough
// to count as a success.
type Strategy interface {
	// Name identifies the strategy in logs and transcript provenance.
	Name() string

	// Attempt runs the technique once against the given page.
	Attempt(ctx context.Context, videoID string, pg page.Access) (string, error)
}

// Chain builds the canonical ordered strategy list, most reliable first:
//
//  1. embedded player-response extraction
//  2. inline caption-track URL scraping
//  3. rendered on-screen caption harvesting
//  4. description timestamp-heuristic extraction
//  5. direct timed-text endpoint probe
func Chain(cfg *config.AcquisitionConfig, sleeper page.Sleeper) []Strategy {
	return []Strategy{
		&PlayerData{Languages: cfg.LanguagePreferences},
		&MarkupScan{},
		&RenderedCaptions{
			SegmentSelector: cfg.CaptionSegmentSelector,
			ToggleSelector:  cfg.CaptionToggleSelector,
			SettleDelay:     cfg.SettleDelay,
			Sleeper:         sleeper,
		},
		&DescriptionTimestamps{Selector: cfg.DescriptionSelector},
		&TimedTextProbe{Languages: cfg.LanguagePreferences},
	}
}
