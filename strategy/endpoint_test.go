package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimedTextProbeFallsThroughLanguages(t *testing.T) {
	pg := &fakePage{
		fetchFn: func(ctx context.Context, url string) ([]byte, error) {
			if url == "https://www.youtube.com/api/timedtext?lang=en&v=dQw4w9WgXcQ" {
				return nil, errors.New("404")
			}
			return []byte(sampleTimedText), nil
		},
	}

	s := &TimedTextProbe{Languages: []string{"en", "en-US"}}
	text, err := s.Attempt(context.Background(), "dQw4w9WgXcQ", pg)
	require.NoError(t, err)
	assert.Contains(t, text, "welcome back")
	assert.Equal(t, []string{
		"https://www.youtube.com/api/timedtext?lang=en&v=dQw4w9WgXcQ",
		"https://www.youtube.com/api/timedtext?lang=en-US&v=dQw4w9WgXcQ",
	}, pg.fetchCalls)
}

func TestTimedTextProbeSkipsEmptyAndMalformed(t *testing.T) {
	responses := map[string][]byte{
		"https://www.youtube.com/api/timedtext?lang=en&v=dQw4w9WgXcQ":    []byte(""),
		"https://www.youtube.com/api/timedtext?lang=en-US&v=dQw4w9WgXcQ": []byte("<html>error</html>"),
	}
	pg := &fakePage{
		fetchFn: func(ctx context.Context, url string) ([]byte, error) {
			return responses[url], nil
		},
	}

	s := &TimedTextProbe{Languages: []string{"en", "en-US"}}
	_, err := s.Attempt(context.Background(), "dQw4w9WgXcQ", pg)
	assert.Error(t, err)
}

func TestTimedTextProbeAllLanguagesFail(t *testing.T) {
	pg := &fakePage{
		fetchFn: func(ctx context.Context, url string) ([]byte, error) {
			return nil, errors.New("blocked")
		},
	}

	s := &TimedTextProbe{Languages: []string{"en", "en-US", "en-GB"}}
	_, err := s.Attempt(context.Background(), "dQw4w9WgXcQ", pg)
	assert.Error(t, err)
	assert.Len(t, pg.fetchCalls, 3)
}
