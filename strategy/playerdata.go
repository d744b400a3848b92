package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clipsage/transcript-scraper/model"
	"github.com/clipsage/transcript-scraper/page"
	"github.com/clipsage/transcript-scraper/timedtext"
)

// playerResponseMarker marks the start of the player configuration blob
// embedded in the watch page's inline scripts.
const playerResponseMarker = "ytInitialPlayerResponse"

// playerResponse is the slice of the player configuration blob we care
// about: the caption track list.
type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []model.CaptionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// PlayerData extracts caption tracks from the player configuration blob
// embedded in the page source, fetches the best track, and parses it as
// timed text. This is the primary strategy.
type PlayerData struct {
	Languages []string
}

// Name implements Strategy.
func (s *PlayerData) Name() string { return "player-data" }

// Attempt implements Strategy.
func (s *PlayerData) Attempt(ctx context.Context, videoID string, pg page.Access) (string, error) {
	src, err := pg.Source(ctx)
	if err != nil {
		return "", fmt.Errorf("read page source: %w", err)
	}

	blob := extractPlayerResponse(src)
	if blob == nil {
		return "", errors.New("player response blob not found in page source")
	}

	var resp playerResponse
	if err := json.Unmarshal(blob, &resp); err != nil {
		return "", fmt.Errorf("decode player response: %w", err)
	}
	if resp.Captions == nil {
		return "", errors.New("no captions object in player response")
	}

	tracks := resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return "", errors.New("no caption tracks in player response")
	}

	track := PickTrack(tracks, s.Languages)
	log.Debug().
		Str("video_id", videoID).
		Str("language", track.LanguageCode).
		Str("kind", track.Kind).
		Msg("Selected caption track from player data")

	data, err := pg.Fetch(ctx, DecodeTrackURL(track.BaseURL))
	if err != nil {
		return "", fmt.Errorf("fetch caption track: %w", err)
	}

	return timedtext.Parse(data)
}

// extractPlayerResponse locates the player configuration JSON in the page
// source and returns the balanced top-level object.
func extractPlayerResponse(src string) []byte {
	idx := strings.Index(src, playerResponseMarker)
	if idx < 0 {
		return nil
	}

	start := strings.IndexByte(src[idx:], '{')
	if start < 0 {
		return nil
	}
	return extractJSONObject(src[idx+start:])
}

// extractJSONObject returns the balanced JSON object starting at s[0],
// which must be '{'. String literals and escapes are respected so braces
// inside caption text do not break the scan.
func extractJSONObject(s string) []byte {
	if s == "" || s[0] != '{' {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return []byte(s[:i+1])
			}
		}
	}
	return nil
}

// PickTrack selects the best caption track for the language preferences:
// a manually authored track in a preferred language, then any track in a
// preferred language, then any English-variant track, then the first one.
func PickTrack(tracks []model.CaptionTrack, langs []string) model.CaptionTrack {
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t
			}
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t
		}
	}
	return tracks[0]
}

// DecodeTrackURL undoes the escaping applied to caption track URLs embedded
// in script payloads.
func DecodeTrackURL(u string) string {
	u = strings.ReplaceAll(u, `\u0026`, "&")
	u = strings.ReplaceAll(u, `\/`, "/")
	u = strings.ReplaceAll(u, "&amp;", "&")
	return u
}
