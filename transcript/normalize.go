package transcript

import (
	"regexp"
	"strings"
)

// Pre-compiled patterns for text normalization
var (
	// Bracketed non-speech annotations inserted by captioners,
	// e.g. [Music], (applause), [LAUGHTER]
	annotationPattern = regexp.MustCompile(`(?i)[\[(]\s*(?:music|applause|laughter|laughs|laughing|cheering|inaudible|silence|noise|foreign)[^\])]*[\])]`)

	// Runs of whitespace, including the escapes caption payloads carry
	whitespacePattern = regexp.MustCompile(`\s+`)

	// A space wedged before closing punctuation
	punctSpacePattern = regexp.MustCompile(`\s+([.,!?;:])`)
)

// Normalize cleans raw transcript text into the canonical form the pipeline
// caches and returns: annotations stripped, whitespace collapsed,
// auto-caption word stutters removed, punctuation spacing fixed. The
// function is deterministic and idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = annotationPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = collapseRepeatedWords(s)
	s = punctSpacePattern.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// collapseRepeatedWords drops immediately-repeated duplicate words, a common
// auto-captioning artifact ("the the video" -> "the video"). RE2 has no
// backreferences, so this is a token walk rather than a regex.
func collapseRepeatedWords(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if n := len(out); n > 0 && strings.EqualFold(out[n-1], w) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
