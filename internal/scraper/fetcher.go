package scraper

import (
	"context"
	"errors"
	"log"
	"time"
)

type Fetcher interface {
	FetchPosting(ctx context.Context, url string) (string, error)
}

// Chain tries each fetcher in order and returns the first non-empty text.
// Invalid URLs stop the chain.
type Chain struct {
	fetchers []Fetcher
	logger   *log.Logger
}

func NewChain(logger *log.Logger, fetchers ...Fetcher) *Chain {
	if logger == nil {
		logger = log.Default()
	}
	return &Chain{fetchers: fetchers, logger: logger}
}

func (c *Chain) FetchPosting(ctx context.Context, url string) (string, error) {
	var errs []error
	for i, f := range c.fetchers {
		if f == nil {
			continue
		}
		text, err := f.FetchPosting(ctx, url)
		if err == nil {
			return text, nil
		}
		errs = append(errs, err)
		if errors.Is(err, ErrInvalidURL) || ctx.Err() != nil {
			break
		}
		c.logger.Printf("[Fetch] fallback step=%d err=%v", i, err)
	}
	if len(errs) == 0 {
		return "", errors.New("no posting fetcher configured")
	}
	return "", errors.Join(errs...)
}

// NewPostingFetcher returns a static fetcher, falling back to headless Chrome
// when headless is set.
func NewPostingFetcher(userAgent string, timeout time.Duration, headless bool, logger *log.Logger) Fetcher {
	static := NewCollyFetcher(userAgent, timeout, logger)
	if !headless {
		return static
	}
	return NewChain(logger, static, NewHeadlessFetcher(userAgent, timeout, logger))
}
