package github

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
)

type staticToken string

func (s staticToken) GetToken(_ context.Context) (string, error) {
	return string(s), nil
}

func TestSource_Fetch_NoRepoPath(t *testing.T) {
	s := New(domain.GitHubConfig{Owner: "acme", Repo: "surveys"}, nil)

	_, err := s.Fetch(context.Background(), domain.Artifact{Name: "a"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSource_Fetch_MissingOwnerRepo(t *testing.T) {
	s := New(domain.GitHubConfig{}, nil)

	_, err := s.Fetch(context.Background(), domain.Artifact{Name: "a", RepoPath: "x.json"})

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestSource_EnsureClient_Unauthenticated(t *testing.T) {
	s := New(domain.GitHubConfig{Owner: "acme", Repo: "surveys"}, nil)

	require.NoError(t, s.ensureClient(context.Background()))
	assert.NotNil(t, s.gh)
}

func TestSource_EnsureClient_TokenFromProvider(t *testing.T) {
	s := New(domain.GitHubConfig{Owner: "acme", Repo: "surveys"}, staticToken("tok"))

	require.NoError(t, s.ensureClient(context.Background()))
	assert.NotNil(t, s.gh)

	// Client is built once and reused.
	first := s.gh
	require.NoError(t, s.ensureClient(context.Background()))
	assert.Same(t, first, s.gh)
}
