package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	ErrEmptyPosting       = errors.New("job posting is empty")
	ErrSuperseded         = errors.New("analysis superseded by a newer request")
	ErrNoAnalysis         = errors.New("no analysis available")
	ErrFetcherUnavailable = errors.New("posting fetcher not configured")
	ErrProfileUnavailable = errors.New("skill profile unavailable")
)

// PostingFetchError is returned when a posting URL could not be turned into
// text. It is terminal and never retried.
type PostingFetchError struct {
	URL string
	Err error
}

func (e *PostingFetchError) Error() string {
	return "could not retrieve the posting; provide the text directly"
}

func (e *PostingFetchError) Unwrap() error { return e.Err }

// Detail includes the URL and cause for logs.
func (e *PostingFetchError) Detail() string {
	return fmt.Sprintf("url=%q err=%v", e.URL, e.Err)
}
