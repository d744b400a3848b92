// Package config provides configuration structures for transcript acquisition
package config

import (
	"fmt"
	"time"
)

// AcquisitionConfig holds configuration for the transcript acquisition pipeline
type AcquisitionConfig struct {
	// Pipeline configuration
	MinTranscriptLength int           `yaml:"min_transcript_length" json:"min_transcript_length"` // Shortest text accepted as a usable transcript
	SettleDelay         time.Duration `yaml:"settle_delay" json:"settle_delay"`                   // Wait before reading rendered captions
	CacheSize           int           `yaml:"cache_size" json:"cache_size"`                       // Session cache capacity (videos)
	LanguagePreferences []string      `yaml:"language_preferences" json:"language_preferences"`   // Caption track languages, in priority order

	// Network configuration
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"` // Timeout for individual caption fetches
	UserAgent      string        `yaml:"user_agent" json:"user_agent"`           // User agent for page and track fetches

	// Page selectors
	CaptionSegmentSelector string `yaml:"caption_segment_selector" json:"caption_segment_selector"` // Rendered caption line nodes
	CaptionToggleSelector  string `yaml:"caption_toggle_selector" json:"caption_toggle_selector"`   // Captions on/off control
	DescriptionSelector    string `yaml:"description_selector" json:"description_selector"`         // Video description container

	// Persistence configuration
	StorePath string `yaml:"store_path" json:"store_path"` // SQLite path for the 24h transcript store; empty disables persistence
}

// DefaultAcquisitionConfig returns a configuration with sensible defaults
func DefaultAcquisitionConfig() *AcquisitionConfig {
	return &AcquisitionConfig{
		MinTranscriptLength:    50,
		SettleDelay:            1200 * time.Millisecond,
		CacheSize:              65536,
		LanguagePreferences:    []string{"en", "en-US", "en-GB"},
		RequestTimeout:         15 * time.Second,
		UserAgent:              "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		CaptionSegmentSelector: ".ytp-caption-segment",
		CaptionToggleSelector:  ".ytp-subtitles-button",
		DescriptionSelector:    "#description",
	}
}

// Validate checks if the configuration is valid
func (c *AcquisitionConfig) Validate() error {
	if c.MinTranscriptLength < 1 {
		return fmt.Errorf("min_transcript_length must be at least 1")
	}

	if c.SettleDelay < 0 {
		return fmt.Errorf("settle_delay cannot be negative")
	}

	if c.CacheSize < 1 {
		return fmt.Errorf("cache_size must be at least 1")
	}

	if len(c.LanguagePreferences) == 0 {
		return fmt.Errorf("language_preferences cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}

	if c.CaptionSegmentSelector == "" {
		return fmt.Errorf("caption_segment_selector cannot be empty")
	}

	if c.CaptionToggleSelector == "" {
		return fmt.Errorf("caption_toggle_selector cannot be empty")
	}

	if c.DescriptionSelector == "" {
		return fmt.Errorf("description_selector cannot be empty")
	}

	return nil
}
