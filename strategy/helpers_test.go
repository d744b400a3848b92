package strategy

import (
	"context"
	"errors"
	"time"
)

// fakePage is a function-backed page.Access for strategy tests.
type fakePage struct {
	sourceFn   func(ctx context.Context) (string, error)
	elementsFn func(ctx context.Context, selector string) ([]string, error)
	clickFn    func(ctx context.Context, selector string) error
	fetchFn    func(ctx context.Context, url string) ([]byte, error)

	fetchCalls []string
	clickCalls []string
}

func (f *fakePage) Source(ctx context.Context) (string, error) {
	if f.sourceFn == nil {
		return "", errors.New("no source configured")
	}
	return f.sourceFn(ctx)
}

func (f *fakePage) Elements(ctx context.Context, selector string) ([]string, error) {
	if f.elementsFn == nil {
		return nil, nil
	}
	return f.elementsFn(ctx, selector)
}

func (f *fakePage) Click(ctx context.Context, selector string) error {
	f.clickCalls = append(f.clickCalls, selector)
	if f.clickFn == nil {
		return nil
	}
	return f.clickFn(ctx, selector)
}

func (f *fakePage) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.fetchCalls = append(f.fetchCalls, url)
	if f.fetchFn == nil {
		return nil, errors.New("no fetch configured")
	}
	return f.fetchFn(ctx, url)
}

// instantSleeper counts suspensions without waiting.
type instantSleeper struct {
	sleeps int
}

func (s *instantSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.sleeps++
	return ctx.Err()
}

const sampleTimedText = `<transcript>` +
	`<text start="0.0" dur="2.0">welcome back to the channel</text>` +
	`<text start="2.0" dur="2.0">today we look at caption scraping</text>` +
	`</transcript>`
