package page

import (
	"fmt"
	"regexp"
)

// Watch URL shapes the host platform serves. The capture group is always the
// 11-character video identifier.
var watchURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/watch\?(?:[^#]*&)?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID pulls the video identifier out of a watch page URL. It
// recognizes canonical watch URLs, short URLs, embeds, shorts, and live
// permalinks.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range watchURLPatterns {
		if m := pattern.FindStringSubmatch(rawURL); len(m) == 2 {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("no video ID found in URL: %s", rawURL)
}
