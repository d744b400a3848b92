// Package service exposes transcript acquisition to the messaging relay.
// It validates input, consults the persistent store, collapses concurrent
// requests for the same video into a single acquisition, and delegates the
// actual scraping to the transcript pipeline.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/clipsage/transcript-scraper/model"
	"github.com/clipsage/transcript-scraper/page"
	"github.com/clipsage/transcript-scraper/store"
	"github.com/clipsage/transcript-scraper/transcript"
)

// PageFactory opens page access for a video. The service creates one page
// context per acquisition; callers running inside a live page supply a
// factory returning their existing context instead.
type PageFactory func(videoID string) page.Access

// Service is the outward-facing transcript boundary.
type Service struct {
	acquirer *transcript.Acquirer
	store    *store.Store // nil disables persistence
	pages    PageFactory
	group    singleflight.Group
}

// New creates a Service. The store may be nil.
func New(acquirer *transcript.Acquirer, st *store.Store, pages PageFactory) (*Service, error) {
	if acquirer == nil {
		return nil, fmt.Errorf("acquirer is required")
	}
	if pages == nil {
		return nil, fmt.Errorf("page factory is required")
	}
	return &Service{
		acquirer: acquirer,
		store:    st,
		pages:    pages,
	}, nil
}

// GetTranscript returns the transcript for a video, from the persistent
// store when a fresh row exists, otherwise by running the acquisition
// pipeline. Concurrent calls for the same video ID share one acquisition.
func (s *Service) GetTranscript(ctx context.Context, videoID string) (*model.Transcript, error) {
	requestID := uuid.NewString()
	logger := log.With().
		Str("request_id", requestID).
		Str("video_id", videoID).
		Logger()

	if err := transcript.ValidateVideoID(videoID); err != nil {
		return nil, fmt.Errorf("invalid video ID: %w", err)
	}

	if s.store != nil {
		cached, ok, err := s.store.Get(ctx, videoID)
		if err != nil {
			logger.Warn().Err(err).Msg("Persistent store read failed, acquiring fresh")
		} else if ok {
			logger.Debug().Str("source", cached.Source).Msg("Transcript served from persistent store")
			return cached, nil
		}
	}

	v, err, shared := s.group.Do(videoID, func() (interface{}, error) {
		return s.acquirer.Acquire(ctx, videoID, s.pages(videoID))
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug().Msg("Acquisition shared with a concurrent request")
	}

	result := v.(*model.Transcript)

	if s.store != nil {
		if err := s.store.Put(ctx, result); err != nil {
			logger.Warn().Err(err).Msg("Failed to persist transcript")
		}
	}

	return result, nil
}
