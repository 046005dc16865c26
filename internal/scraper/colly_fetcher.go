package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher downloads a posting page and converts it to plain text.
type CollyFetcher struct {
	userAgent string
	timeout   time.Duration
	logger    *log.Logger
}

func NewCollyFetcher(userAgent string, timeout time.Duration, logger *log.Logger) *CollyFetcher {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &CollyFetcher{userAgent: userAgent, timeout: timeout, logger: logger}
}

func (f *CollyFetcher) FetchPosting(ctx context.Context, rawURL string) (string, error) {
	u, host, err := parseURL(rawURL)
	if err != nil {
		return "", err
	}

	c := colly.NewCollector(
		colly.AllowedDomains(host),
		colly.MaxDepth(1),
	)
	timeout := f.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	c.SetRequestTimeout(timeout)

	var (
		body   []byte
		reqErr error
	)
	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		for k, v := range httpHeaders(f.userAgent) {
			r.Headers.Set(k, v)
		}
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			reqErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
			return
		}
		reqErr = err
	})

	done := make(chan error, 1)
	go func() {
		err := c.Visit(u.String())
		c.Wait()
		done <- err
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", err
		}
	}
	if reqErr != nil {
		return "", reqErr
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	text, err := HTMLToText(string(body))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPage
	}
	f.logger.Printf("[Fetch] colly status=ok host=%s chars=%d", host, len(text))
	return text, nil
}
