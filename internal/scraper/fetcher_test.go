package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	text  string
	err   error
	calls int
}

func (s *stubFetcher) FetchPosting(ctx context.Context, url string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestChain_FallsBack(t *testing.T) {
	first := &stubFetcher{err: ErrEmptyPage}
	second := &stubFetcher{text: "React"}

	text, err := NewChain(quietLogger(), first, nil, second).FetchPosting(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, "React", text)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChain_InvalidURLStops(t *testing.T) {
	first := &stubFetcher{err: ErrInvalidURL}
	second := &stubFetcher{text: "React"}

	_, err := NewChain(quietLogger(), first, second).FetchPosting(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Zero(t, second.calls)
}

func TestChain_JoinsErrors(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")

	_, err := NewChain(quietLogger(), &stubFetcher{err: a}, &stubFetcher{err: b}).FetchPosting(context.Background(), "https://example.com")

	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
}

func TestChain_Empty(t *testing.T) {
	_, err := NewChain(nil).FetchPosting(context.Background(), "https://example.com")
	assert.Error(t, err)
}

func TestNewPostingFetcher(t *testing.T) {
	_, ok := NewPostingFetcher("", 0, false, quietLogger()).(*CollyFetcher)
	assert.True(t, ok)

	_, ok = NewPostingFetcher("", 0, true, quietLogger()).(*Chain)
	assert.True(t, ok)
}
