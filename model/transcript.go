// Package model defines the data types shared across the transcript scraper.
package model

import "time"

// Transcript is the normalized caption text for a single video. Timing
// information from the source caption track is discarded; only the spoken
// text survives.
type Transcript struct {
	VideoID     string    `json:"video_id"`
	Text        string    `json:"text"`
	Source      string    `json:"source"` // name of the strategy that produced it
	RetrievedAt time.Time `json:"retrieved_at"`
}

// Len returns the length of the transcript text in bytes.
func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Text)
}

// CaptionTrack describes a single host-provided caption track as advertised
// by the player configuration blob on the watch page.
type CaptionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" marks auto-generated tracks
	Name         string `json:"-"`
}
