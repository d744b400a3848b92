// Package transcript implements the fallback-chained caption acquisition
// pipeline: an ordered list of extraction strategies tried strictly in
// sequence against the watch page, with per-session caching and text
// normalization. Individual strategy failures are swallowed; only complete
// exhaustion surfaces an error.
package transcript

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/clipsage/transcript-scraper/config"
	"github.com/clipsage/transcript-scraper/model"
	"github.com/clipsage/transcript-scraper/page"
	"github.com/clipsage/transcript-scraper/strategy"
)

// Acquirer runs the strategy chain and caches results per video ID for the
// lifetime of the process.
type Acquirer struct {
	cfg        *config.AcquisitionConfig
	strategies []strategy.Strategy
	cache      *lru.Cache[string, *model.Transcript]
}

// NewAcquirer creates an acquirer with the canonical strategy chain.
func NewAcquirer(cfg *config.AcquisitionConfig) (*Acquirer, error) {
	return NewAcquirerWithStrategies(cfg, strategy.Chain(cfg, page.StandardSleeper{}))
}

// NewAcquirerWithStrategies creates an acquirer with an explicit strategy
// list. Tests use this to substitute instrumented strategies.
func NewAcquirerWithStrategies(cfg *config.AcquisitionConfig, strategies []strategy.Strategy) (*Acquirer, error) {
	if cfg == nil {
		cfg = config.DefaultAcquisitionConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid acquisition config: %w", err)
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("at least one strategy is required")
	}

	cache, err := lru.New[string, *model.Transcript](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript cache: %w", err)
	}

	return &Acquirer{
		cfg:        cfg,
		strategies: strategies,
		cache:      cache,
	}, nil
}

// Acquire returns the best-available transcript for the video. Repeated
// calls for the same ID within a session return the cached result without
// re-running any strategy. When every strategy fails or returns
// sub-threshold text, Acquire fails with ErrNoTranscriptAvailable.
func (a *Acquirer) Acquire(ctx context.Context, videoID string, pg page.Access) (*model.Transcript, error) {
	if err := ValidateVideoID(videoID); err != nil {
		return nil, fmt.Errorf("invalid video ID: %w", err)
	}

	if cached, ok := a.cache.Get(videoID); ok {
		log.Debug().
			Str("video_id", videoID).
			Str("source", cached.Source).
			Msg("Using cached transcript")
		return cached, nil
	}

	for _, s := range a.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := s.Attempt(ctx, videoID, pg)
		if err != nil {
			sErr := &StrategyError{Strategy: s.Name(), Err: err}
			log.Debug().
				Str("video_id", videoID).
				Str("strategy", s.Name()).
				Err(sErr.Err).
				Msg("Strategy failed, falling through")
			continue
		}

		text := Normalize(raw)
		if len(text) < a.cfg.MinTranscriptLength {
			log.Debug().
				Str("video_id", videoID).
				Str("strategy", s.Name()).
				Int("length", len(text)).
				Int("min_length", a.cfg.MinTranscriptLength).
				Msg("Strategy result below minimum length, falling through")
			continue
		}

		result := &model.Transcript{
			VideoID:     videoID,
			Text:        text,
			Source:      s.Name(),
			RetrievedAt: time.Now(),
		}
		a.cache.Add(videoID, result)

		log.Info().
			Str("video_id", videoID).
			Str("strategy", s.Name()).
			Int("length", len(text)).
			Msg("Transcript acquired")

		return result, nil
	}

	log.Warn().
		Str("video_id", videoID).
		Int("strategies", len(a.strategies)).
		Msg("All extraction strategies exhausted")

	return nil, ErrNoTranscriptAvailable
}

// CacheLen reports how many transcripts the session cache currently holds.
func (a *Acquirer) CacheLen() int {
	return a.cache.Len()
}
