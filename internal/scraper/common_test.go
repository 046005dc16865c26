package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>body{}</style></head><body>
		<nav>Home | Jobs</nav>
		<h1>Backend   Engineer</h1>
		<p>Company: Acme</p>
		<script>var x = "React";</script>
		<ul><li>Go</li><li>Docker</li></ul>
		<div>line one<br>line two</div>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer\nCompany: Acme\nGo\nDocker\nline one\nline two", text)
}

func TestHTMLToText_Empty(t *testing.T) {
	text, err := HTMLToText("<html><body><script>x()</script></body></html>")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestParseURL(t *testing.T) {
	u, host, err := parseURL(" https://jobs.example.com:8443/posting/1 ")
	require.NoError(t, err)
	assert.Equal(t, "jobs.example.com", host)
	assert.Equal(t, "/posting/1", u.Path)

	for _, raw := range []string{"", "ftp://example.com", "/relative/path", "http://"} {
		_, _, err := parseURL(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestHTTPHeaders(t *testing.T) {
	assert.Equal(t, DefaultUserAgent, httpHeaders("")["User-Agent"])
	assert.Equal(t, "custom", httpHeaders("custom")["User-Agent"])
}
