// Package store persists acquired transcripts across page sessions. Rows
// expire 24 hours after retrieval; the session-scoped cache in the
// transcript package remains authoritative within a single process.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/clipsage/transcript-scraper/model"
)

// TTL is how long a persisted transcript stays valid.
const TTL = 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	video_id     TEXT PRIMARY KEY,
	text         TEXT NOT NULL,
	source       TEXT NOT NULL,
	retrieved_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcripts_retrieved_at ON transcripts(retrieved_at);
`

// Store is a SQLite-backed transcript cache with a 24-hour expiry.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the store at the given path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("Transcript store opened")
	return &Store{db: db}, nil
}

// Get returns the stored transcript for the video ID if one exists and has
// not expired. Expired rows are deleted on read.
func (s *Store) Get(ctx context.Context, videoID string) (*model.Transcript, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT text, source, retrieved_at FROM transcripts WHERE video_id = ?`, videoID)

	var (
		text      string
		source    string
		retrieved int64
	)
	if err := row.Scan(&text, &source, &retrieved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read transcript: %w", err)
	}

	retrievedAt := time.Unix(retrieved, 0)
	if time.Since(retrievedAt) > TTL {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM transcripts WHERE video_id = ?`, videoID); err != nil {
			log.Warn().Err(err).Str("video_id", videoID).Msg("Failed to delete expired transcript")
		}
		return nil, false, nil
	}

	return &model.Transcript{
		VideoID:     videoID,
		Text:        text,
		Source:      source,
		RetrievedAt: retrievedAt,
	}, true, nil
}

// Put stores or replaces the transcript for its video ID.
func (s *Store) Put(ctx context.Context, t *model.Transcript) error {
	if t == nil || t.VideoID == "" {
		return fmt.Errorf("transcript must have a video ID")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcripts (video_id, text, source, retrieved_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(video_id) DO UPDATE SET
		   text = excluded.text,
		   source = excluded.source,
		   retrieved_at = excluded.retrieved_at`,
		t.VideoID, t.Text, t.Source, t.RetrievedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to store transcript: %w", err)
	}
	return nil
}

// Prune deletes every expired row and reports how many were removed.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-TTL).Unix()
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM transcripts WHERE retrieved_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune store: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Debug().Int64("pruned", n).Msg("Expired transcripts pruned")
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
