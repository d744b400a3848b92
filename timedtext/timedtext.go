// Package timedtext parses the timed-text XML documents served by the host
// platform's caption endpoints. Timing attributes are discarded; only the
// text segments survive, joined with single spaces.
package timedtext

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"
)

// ErrMalformed is returned when a payload matches neither the structured
// XML shape nor the regex fallback shape.
var ErrMalformed = errors.New("timedtext: unparseable payload")

// textElementPattern is the regex fallback for environments or payloads the
// structured parser chokes on. It matches the same <text ...>...</text>
// element shape the XML path extracts.
var textElementPattern = regexp.MustCompile(`(?s)<text[^>]*>(.*?)</text>`)

// The small fixed set of entities caption payloads actually contain.
// &amp; is decoded last so double-encoded payloads decode exactly once.
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// Parse extracts the caption text from a timed-text document. It tries the
// structured XML parser first and falls back to a pure-regex parse of
// <text> elements. An empty or unmatchable payload yields ErrMalformed.
func Parse(data []byte) (string, error) {
	if text, err := parseXML(data); err == nil && text != "" {
		return text, nil
	}

	if text := parseRegex(data); text != "" {
		return text, nil
	}

	return "", ErrMalformed
}

// segmentElements are the text-bearing leaf elements the known timed-text
// layouts use: <text> in the classic format, <p>/<s> in srv3.
var segmentElements = map[string]bool{
	"text": true,
	"p":    true,
	"s":    true,
}

// parseXML walks the document tokens and concatenates the character data of
// the text-bearing segment elements.
func parseXML(data []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity

	var (
		parts []string
		stack []string
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			stack = append(stack, el.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 || !segmentElements[stack[len(stack)-1]] {
				continue
			}
			if text := strings.TrimSpace(string(el)); text != "" {
				parts = append(parts, text)
			}
		}
	}

	// xml.HTMLEntity expands &nbsp; to U+00A0, which the whitespace
	// normalizer does not treat as a space.
	return strings.ReplaceAll(strings.Join(parts, " "), "\u00a0", " "), nil
}

// parseRegex matches <text>...</text> elements directly and decodes the
// fixed entity set by hand.
func parseRegex(data []byte) string {
	matches := textElementPattern.FindAllSubmatch(data, -1)
	if len(matches) == 0 {
		return ""
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if text := strings.TrimSpace(DecodeEntities(string(m[1]))); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// DecodeEntities decodes the fixed set of HTML entities caption payloads
// commonly contain.
func DecodeEntities(s string) string {
	s = entityReplacer.Replace(s)
	return strings.ReplaceAll(s, "&amp;", "&")
}
