package strategy

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/clipsage/transcript-scraper/page"
	"github.com/clipsage/transcript-scraper/timedtext"
)

// trackURLPattern matches a caption-track URL embedded anywhere in the raw
// markup, covering pages where the player configuration blob is absent or
// shaped differently than the structured parser expects.
var trackURLPattern = regexp.MustCompile(`"(?:baseUrl|url)"\s*:\s*"(https:[^"]*?(?:\\/|/)api(?:\\/|/)timedtext[^"]*)"`)

// MarkupScan regex-scans the raw page markup for a caption-track URL. More
// brittle than PlayerData, but survives player blob layout changes.
type MarkupScan struct{}

// Name implements Strategy.
func (s *MarkupScan) Name() string { return "markup-scan" }

// Attempt implements Strategy.
func (s *MarkupScan) Attempt(ctx context.Context, videoID string, pg page.Access) (string, error) {
	src, err := pg.Source(ctx)
	if err != nil {
		return "", fmt.Errorf("read page source: %w", err)
	}

	m := trackURLPattern.FindStringSubmatch(src)
	if len(m) != 2 {
		return "", errors.New("no caption track URL in page markup")
	}

	trackURL := DecodeTrackURL(m[1])
	log.Debug().Str("video_id", videoID).Str("url", trackURL).Msg("Found caption track URL in raw markup")

	data, err := pg.Fetch(ctx, trackURL)
	if err != nil {
		return "", fmt.Errorf("fetch caption track: %w", err)
	}

	return timedtext.Parse(data)
}
