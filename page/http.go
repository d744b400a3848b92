package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

const (
	// Watch pages routinely run past 1MB of inline script payloads.
	maxPageBytes  = 6 * 1024 * 1024
	maxTrackBytes = 1 * 1024 * 1024
)

// HTTPAccess implements Access over a plain HTTP fetch of the watch page.
// It has no live renderer, so Click always fails and rendered-caption reads
// observe only what is present in the served markup. The pipeline's fallback
// chain tolerates both.
type HTTPAccess struct {
	videoID   string
	userAgent string
	client    *http.Client

	mu  sync.Mutex
	src string
	doc *goquery.Document
}

// NewHTTPAccess creates page access backed by an HTTP fetch of the watch page
// for the given video. The page is fetched lazily on first use.
func NewHTTPAccess(videoID, userAgent string, timeout time.Duration) *HTTPAccess {
	return &HTTPAccess{
		videoID:   videoID,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Source returns the watch page markup, fetching it on first call.
func (a *HTTPAccess) Source(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sourceLocked(ctx)
}

func (a *HTTPAccess) sourceLocked(ctx context.Context) (string, error) {
	if a.src != "" {
		return a.src, nil
	}

	watchURL := "https://www.youtube.com/watch?v=" + a.videoID
	log.Debug().Str("video_id", a.videoID).Str("url", watchURL).Msg("Fetching watch page")

	body, err := a.get(ctx, watchURL, maxPageBytes, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return "", fmt.Errorf("fetch watch page: %w", err)
	}

	a.src = string(body)
	return a.src, nil
}

// Elements parses the fetched page and returns the text of matching nodes.
func (a *HTTPAccess) Elements(ctx context.Context, selector string) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.doc == nil {
		src, err := a.sourceLocked(ctx)
		if err != nil {
			return nil, err
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("parse watch page: %w", err)
		}
		a.doc = doc
	}

	var texts []string
	a.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts, nil
}

// Click is unsupported without a live renderer.
func (a *HTTPAccess) Click(ctx context.Context, selector string) error {
	return ErrClickUnsupported
}

// Fetch performs a GET against a caption-serving endpoint.
func (a *HTTPAccess) Fetch(ctx context.Context, url string) ([]byte, error) {
	return a.get(ctx, url, maxTrackBytes, "*/*")
}

func (a *HTTPAccess) get(ctx context.Context, url string, limit int64, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
