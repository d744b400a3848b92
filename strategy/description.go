package strategy

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clipsage/transcript-scraper/page"
)

// minTimestampMatches is how many timestamp-shaped substrings a description
// must contain before it is trusted as a manually authored transcript.
const minTimestampMatches = 5

// timestampPattern matches M:SS and H:MM:SS shaped tokens.
var timestampPattern = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)

// DescriptionTimestamps treats a heavily timestamped video description as a
// manually authored transcript. Last-resort heuristic before the endpoint
// probe.
type DescriptionTimestamps struct {
	Selector string
}

// Name implements Strategy.
func (s *DescriptionTimestamps) Name() string { return "description-timestamps" }

// Attempt implements Strategy.
func (s *DescriptionTimestamps) Attempt(ctx context.Context, videoID string, pg page.Access) (string, error) {
	texts, err := pg.Elements(ctx, s.Selector)
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}

	description := strings.TrimSpace(strings.Join(texts, " "))
	if description == "" {
		return "", fmt.Errorf("empty description")
	}

	matches := timestampPattern.FindAllString(description, -1)
	if len(matches) < minTimestampMatches {
		return "", fmt.Errorf("description has %d timestamps, need %d", len(matches), minTimestampMatches)
	}

	log.Debug().
		Str("video_id", videoID).
		Int("timestamps", len(matches)).
		Msg("Treating description as a manually authored transcript")

	return timestampPattern.ReplaceAllString(description, " "), nil
}
