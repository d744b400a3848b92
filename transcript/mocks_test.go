package transcript

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/clipsage/transcript-scraper/page"
)

// MockPageAccess is a mock implementation of the page.Access interface.
type MockPageAccess struct {
	mock.Mock
}

func (m *MockPageAccess) Source(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPageAccess) Elements(ctx context.Context, selector string) ([]string, error) {
	args := m.Called(ctx, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPageAccess) Click(ctx context.Context, selector string) error {
	args := m.Called(ctx, selector)
	return args.Error(0)
}

func (m *MockPageAccess) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// nopSleeper removes wall-clock delays from tests.
type nopSleeper struct{}

func (nopSleeper) Sleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

// countingStrategy is an instrumented strategy for driver-loop tests.
type countingStrategy struct {
	name     string
	text     string
	err      error
	attempts int
}

func (s *countingStrategy) Name() string { return s.name }

func (s *countingStrategy) Attempt(ctx context.Context, videoID string, pg page.Access) (string, error) {
	s.attempts++
	return s.text, s.err
}
