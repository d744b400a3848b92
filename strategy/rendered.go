package strategy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clipsage/transcript-scraper/page"
)

// RenderedCaptions harvests the caption lines currently rendered on screen.
// The caption renderer populates asynchronously, so the strategy waits a
// settle delay before reading. If nothing is rendered it clicks the captions
// toggle and retries the read exactly once.
type RenderedCaptions struct {
	SegmentSelector string
	ToggleSelector  string
	SettleDelay     time.Duration
	Sleeper         page.Sleeper
}

// Name implements Strategy.
func (s *RenderedCaptions) Name() string { return "rendered-captions" }

// Attempt implements Strategy.
func (s *RenderedCaptions) Attempt(ctx context.Context, videoID string, pg page.Access) (string, error) {
	if err := s.Sleeper.Sleep(ctx, s.SettleDelay); err != nil {
		return "", err
	}

	segments, err := pg.Elements(ctx, s.SegmentSelector)
	if err != nil {
		return "", fmt.Errorf("read caption segments: %w", err)
	}

	if len(segments) == 0 {
		log.Debug().Str("video_id", videoID).Msg("No rendered captions, toggling captions control")
		if err := pg.Click(ctx, s.ToggleSelector); err != nil {
			return "", fmt.Errorf("enable captions: %w", err)
		}
		if err := s.Sleeper.Sleep(ctx, s.SettleDelay); err != nil {
			return "", err
		}
		segments, err = pg.Elements(ctx, s.SegmentSelector)
		if err != nil {
			return "", fmt.Errorf("read caption segments after toggle: %w", err)
		}
	}

	if len(segments) == 0 {
		return "", errors.New("no rendered caption segments")
	}

	return strings.Join(segments, " "), nil
}
