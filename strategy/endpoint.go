package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/clipsage/transcript-scraper/page"
	"github.com/clipsage/transcript-scraper/timedtext"
)

// timedTextEndpoint is the conventional caption endpoint shape. Guessing it
// directly is the least reliable technique (cross-origin restrictions apply
// in a page context), so this strategy runs last.
const timedTextEndpoint = "https://www.youtube.com/api/timedtext?lang=%s&v=%s"

// TimedTextProbe fetches the conventional timed-text endpoint directly with
// a small set of language-code guesses.
type TimedTextProbe struct {
	Languages []string
}

// Name implements Strategy.
func (s *TimedTextProbe) Name() string { return "timedtext-probe" }

// Attempt implements Strategy.
func (s *TimedTextProbe) Attempt(ctx context.Context, videoID string, pg page.Access) (string, error) {
	for _, lang := range s.Languages {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		url := fmt.Sprintf(timedTextEndpoint, lang, videoID)
		data, err := pg.Fetch(ctx, url)
		if err != nil {
			log.Debug().Str("video_id", videoID).Str("lang", lang).Err(err).Msg("Timed-text probe fetch failed")
			continue
		}
		if len(data) == 0 {
			continue
		}

		text, err := timedtext.Parse(data)
		if err != nil {
			log.Debug().Str("video_id", videoID).Str("lang", lang).Err(err).Msg("Timed-text probe parse failed")
			continue
		}
		return text, nil
	}

	return "", errors.New("no language guess produced a caption document")
}
