package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skill-gap/internal/domain/learning"

	"golang.org/x/time/rate"
)

const maxBodyBytes = 1 << 20

var ErrBadResponse = errors.New("resource service returned an invalid response")

// HTTPProvider asks a remote catalog for resources:
// GET {base}/resources?skill=<name> -> {"resources": [...]}.
type HTTPProvider struct {
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewHTTPProvider(baseURL string, rps int, timeout time.Duration, userAgent string) *HTTPProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = rps
	}
	return &HTTPProvider{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, burst),
		userAgent: userAgent,
	}
}

type resourcesResponse struct {
	Resources []learning.Resource `json:"resources"`
}

func (p *HTTPProvider) FetchResources(ctx context.Context, skillName string) ([]learning.Resource, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := p.baseURL + "/resources?skill=" + url.QueryEscape(skillName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var body resourcesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	out := make([]learning.Resource, 0, len(body.Resources))
	for _, r := range body.Resources {
		if strings.TrimSpace(r.URL) == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
