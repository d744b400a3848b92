package strategy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptionPage(text string) *fakePage {
	return &fakePage{
		elementsFn: func(ctx context.Context, selector string) ([]string, error) {
			return []string{text}, nil
		},
	}
}

func TestDescriptionTimestampsAccepted(t *testing.T) {
	description := "0:00 intro to the topic " +
		"1:23 the first argument laid out " +
		"12:05 a counterpoint considered " +
		"59:59 the long middle section " +
		"1:02:03 closing thoughts and summary"

	s := &DescriptionTimestamps{Selector: "#description"}
	text, err := s.Attempt(context.Background(), "dQw4w9WgXcQ", descriptionPage(description))
	require.NoError(t, err)

	assert.NotContains(t, text, "0:00")
	assert.NotContains(t, text, "1:02:03")
	assert.Contains(t, text, "intro to the topic")
	assert.Contains(t, text, "closing thoughts and summary")
}

func TestDescriptionTimestampsRejectedBelowThreshold(t *testing.T) {
	// Four timestamps: one short of the heuristic's requirement.
	description := "0:00 intro 1:23 middle 2:34 more 3:45 end, plus plenty of ordinary prose " +
		strings.Repeat("padding words ", 10)

	s := &DescriptionTimestamps{Selector: "#description"}
	_, err := s.Attempt(context.Background(), "dQw4w9WgXcQ", descriptionPage(description))
	assert.Error(t, err)
}

func TestDescriptionTimestampsEmptyDescription(t *testing.T) {
	s := &DescriptionTimestamps{Selector: "#description"}
	_, err := s.Attempt(context.Background(), "dQw4w9WgXcQ", descriptionPage(""))
	assert.Error(t, err)
}
