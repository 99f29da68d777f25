// Package github fetches translation artifacts from files in a GitHub
// repository, for pipelines whose translations live alongside the
// survey sources rather than behind an export URL.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driven"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// DefaultTimeout is the HTTP request timeout for API calls.
const DefaultTimeout = 30 * time.Second

// Ensure Source implements the interface.
var _ driven.TranslationSource = (*Source)(nil)

// Source downloads repository files via the GitHub contents API.
type Source struct {
	cfg           domain.GitHubConfig
	tokenProvider driven.TokenProvider
	gh            *gh.Client
}

// New creates a GitHub source. The token provider may be nil, in which
// case only the config token is used; an empty token means
// unauthenticated requests, which works for public repositories.
func New(cfg domain.GitHubConfig, tokenProvider driven.TokenProvider) *Source {
	return &Source{cfg: cfg, tokenProvider: tokenProvider}
}

// ensureClient initialises the go-github client if not already done.
// Called lazily so the token is only resolved (and possibly prompted
// for) when a repository artifact is actually fetched.
func (s *Source) ensureClient(ctx context.Context) error {
	if s.gh != nil {
		return nil
	}

	token := s.cfg.Token
	if token == "" && s.tokenProvider != nil {
		t, err := s.tokenProvider.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		token = t
	}

	if token == "" {
		s.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
		return nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	s.gh = gh.NewClient(tc)
	return nil
}

// Fetch downloads the artifact's repository path at the configured ref.
func (s *Source) Fetch(ctx context.Context, artifact domain.Artifact) ([]byte, error) {
	if artifact.RepoPath == "" {
		return nil, fmt.Errorf("artifact %s has no repo_path: %w", artifact.Name, domain.ErrInvalidInput)
	}
	if s.cfg.Owner == "" || s.cfg.Repo == "" {
		return nil, fmt.Errorf("github owner/repo not configured: %w", domain.ErrSourceUnavailable)
	}
	if err := s.ensureClient(ctx); err != nil {
		return nil, err
	}

	opts := &gh.RepositoryContentGetOptions{Ref: s.cfg.Ref}
	logger.Debug("github: download %s/%s/%s@%s", s.cfg.Owner, s.cfg.Repo, artifact.RepoPath, s.cfg.Ref)

	rc, _, err := s.gh.Repositories.DownloadContents(ctx, s.cfg.Owner, s.cfg.Repo, artifact.RepoPath, opts)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", artifact.RepoPath, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", artifact.RepoPath, err)
	}
	return data, nil
}
