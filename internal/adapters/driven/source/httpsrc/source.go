// Package httpsrc fetches translation artifacts from plain HTTP
// endpoints, e.g. the export URLs of a translation service.
package httpsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// Conservative fallback when the config leaves the rate unset.
const (
	defaultRatePerSecond = 4.0
	defaultBurst         = 2
)

// Ensure Source implements the interface.
var _ driven.TranslationSource = (*Source)(nil)

// Source downloads artifacts over HTTP with a token-bucket rate limit
// so a large artifact list does not hammer the exporting service.
type Source struct {
	client  *http.Client
	limiter *rate.Limiter
}

// New creates an HTTP source using the pull configuration's rate limits.
func New(cfg domain.PullConfig) *Source {
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = defaultRatePerSecond
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = defaultBurst
	}
	return &Source{
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch downloads one artifact. Non-2xx responses are errors.
func (s *Source) Fetch(ctx context.Context, artifact domain.Artifact) ([]byte, error) {
	if artifact.URL == "" {
		return nil, fmt.Errorf("artifact %s has no URL: %w", artifact.Name, domain.ErrInvalidInput)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artifact.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", artifact.URL, err)
	}

	logger.Debug("GET %s", artifact.URL)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", artifact.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %s", artifact.URL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", artifact.URL, err)
	}
	return data, nil
}
