package transcript

import (
	"fmt"
	"regexp"
)

// Video IDs are 11 characters
const videoIDLength = 11

// Video ID: 11 alphanumeric/underscore/dash characters
var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ValidateVideoID validates a video identifier.
// Identifiers are 11 alphanumeric characters with underscore and dash allowed.
func ValidateVideoID(videoID string) error {
	if videoID == "" {
		return fmt.Errorf("video ID cannot be empty")
	}

	if len(videoID) != videoIDLength {
		return fmt.Errorf("video ID must be %d characters, got %d: %s",
			videoIDLength, len(videoID), videoID)
	}

	if !videoIDPattern.MatchString(videoID) {
		return fmt.Errorf("invalid video ID format (must be 11 alphanumeric/underscore/dash chars): %s",
			videoID)
	}

	return nil
}
