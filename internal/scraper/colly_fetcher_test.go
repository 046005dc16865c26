package scraper

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestCollyFetcher_FetchPosting(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<html><body><h1>Position: Platform Engineer</h1><p>We use Kubernetes and AWS.</p></body></html>`)
	}))
	defer srv.Close()

	f := NewCollyFetcher("skillgap-test", 5*time.Second, quietLogger())
	text, err := f.FetchPosting(context.Background(), srv.URL+"/jobs/1")
	require.NoError(t, err)

	assert.Equal(t, "Position: Platform Engineer\nWe use Kubernetes and AWS.", text)
	assert.Equal(t, "skillgap-test", gotUA)
}

func TestCollyFetcher_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewCollyFetcher("", time.Second, quietLogger()).FetchPosting(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestCollyFetcher_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><body><script>render()</script></body></html>`)
	}))
	defer srv.Close()

	_, err := NewCollyFetcher("", time.Second, quietLogger()).FetchPosting(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrEmptyPage)
}

func TestCollyFetcher_InvalidURL(t *testing.T) {
	_, err := NewCollyFetcher("", time.Second, quietLogger()).FetchPosting(context.Background(), "not a url")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestCollyFetcher_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewCollyFetcher("", 5*time.Second, quietLogger()).FetchPosting(ctx, srv.URL)
	assert.Error(t, err)
}
