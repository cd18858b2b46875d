package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personakit/personafind/internal/types"
)

type stubProvider struct {
	results map[string][]types.Candidate
	err     error
	queries []string
}

func (p *stubProvider) Search(_ context.Context, query string) ([]types.Candidate, error) {
	p.queries = append(p.queries, query)
	if p.err != nil {
		return nil, p.err
	}
	return p.results[query], nil
}

func profileCandidate(link string) types.Candidate {
	return types.Candidate{Title: "John Smith - Engineer", Link: link, Snippet: "profile"}
}

func TestFindCandidates_FiltersProfileLinks(t *testing.T) {
	provider := &stubProvider{results: map[string][]types.Candidate{
		"q1": {
			profileCandidate("https://linkedin.com/in/john-smith"),
			profileCandidate("https://linkedin.com/company/acme"),
			profileCandidate("https://example.com/john"),
		},
	}}
	runner := NewRunner(provider, 10)

	got, err := runner.FindCandidates(context.Background(), []types.Query{{Text: "q1"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Link, "linkedin.com/in")
}

func TestFindCandidates_DedupesAcrossQueries(t *testing.T) {
	provider := &stubProvider{results: map[string][]types.Candidate{
		"q1": {profileCandidate("https://linkedin.com/in/john-smith")},
		"q2": {
			profileCandidate("https://linkedin.com/in/john-smith/"),
			profileCandidate("https://linkedin.com/in/john-smith?trk=search"),
			profileCandidate("https://linkedin.com/in/jane-doe"),
		},
	}}
	runner := NewRunner(provider, 10)

	got, err := runner.FindCandidates(context.Background(), []types.Query{{Text: "q1"}, {Text: "q2"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFindCandidates_StopsAtCap(t *testing.T) {
	provider := &stubProvider{results: map[string][]types.Candidate{
		"q1": {
			profileCandidate("https://linkedin.com/in/a"),
			profileCandidate("https://linkedin.com/in/b"),
			profileCandidate("https://linkedin.com/in/c"),
		},
		"q2": {profileCandidate("https://linkedin.com/in/d")},
	}}
	runner := NewRunner(provider, 2)

	got, err := runner.FindCandidates(context.Background(), []types.Query{{Text: "q1"}, {Text: "q2"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	// The cap was hit during q1, so q2 never ran.
	assert.Equal(t, []string{"q1"}, provider.queries)
}

func TestFindCandidates_SkipsFailedQueries(t *testing.T) {
	provider := &stubProvider{err: assert.AnError}
	runner := NewRunner(provider, 5)

	got, err := runner.FindCandidates(context.Background(), []types.Query{{Text: "q1"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeLink(t *testing.T) {
	assert.Equal(t, "https://linkedin.com/in/a", normalizeLink("https://linkedin.com/in/a/"))
	assert.Equal(t, "https://linkedin.com/in/a", normalizeLink("https://linkedin.com/in/a?trk=x"))
	assert.Equal(t, "https://linkedin.com/in/a", normalizeLink("https://linkedin.com/in/a#about"))
}
