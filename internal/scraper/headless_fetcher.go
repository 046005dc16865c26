package scraper

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessFetcher renders the posting in headless Chrome for pages that build
// their content with JavaScript.
type HeadlessFetcher struct {
	userAgent string
	timeout   time.Duration
	settle    time.Duration
	logger    *log.Logger
}

func NewHeadlessFetcher(userAgent string, timeout time.Duration, logger *log.Logger) *HeadlessFetcher {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return &HeadlessFetcher{userAgent: userAgent, timeout: timeout, settle: 1500 * time.Millisecond, logger: logger}
}

func (f *HeadlessFetcher) FetchPosting(ctx context.Context, rawURL string) (string, error) {
	u, host, err := parseURL(rawURL)
	if err != nil {
		return "", err
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(f.userAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, f.timeout)
	defer reqCancel()

	var html string
	err = chromedp.Run(reqCtx,
		chromedp.Navigate(u.String()),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(f.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}

	text, err := HTMLToText(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPage
	}
	f.logger.Printf("[Fetch] headless status=ok host=%s chars=%d", host, len(text))
	return text, nil
}
