package vcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puemos/prref/internal/vcs"
)

// fakeProvider is a minimal Provider implementation for testing the registry.
type fakeProvider struct {
	id      string
	name    string
	matches func(string) bool
}

func (f *fakeProvider) ID() string   { return f.id }
func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) MatchesRef(reference string) bool {
	return f.matches(reference)
}
func (f *fakeProvider) ParseRef(reference string) (vcs.Ref, error) {
	return nil, nil
}

func TestDetect(t *testing.T) {
	reg := vcs.NewRegistry()

	ghProvider := &fakeProvider{
		id: "github",
		matches: func(reference string) bool {
			return reference == "owner/repo#123"
		},
	}
	glProvider := &fakeProvider{
		id: "gitlab",
		matches: func(reference string) bool {
			return reference == "group/project!42"
		},
	}

	reg.Register(ghProvider)
	reg.Register(glProvider)

	t.Run("detect github", func(t *testing.T) {
		p, err := reg.Detect("owner/repo#123")
		require.NoError(t, err)
		assert.Equal(t, "github", p.ID())
	})

	t.Run("detect gitlab", func(t *testing.T) {
		p, err := reg.Detect("group/project!42")
		require.NoError(t, err)
		assert.Equal(t, "gitlab", p.ID())
	})

	t.Run("detect unknown", func(t *testing.T) {
		_, err := reg.Detect("not-a-reference")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no registered provider")
	})
}

// TestDetectOrder pins first-match-wins semantics for references claimed by
// more than one provider.
func TestDetectOrder(t *testing.T) {
	reg := vcs.NewRegistry()

	matchAll := func(string) bool { return true }
	reg.Register(&fakeProvider{id: "first", matches: matchAll})
	reg.Register(&fakeProvider{id: "second", matches: matchAll})

	p, err := reg.Detect("anything")
	require.NoError(t, err)
	assert.Equal(t, "first", p.ID())
}

func TestGet(t *testing.T) {
	reg := vcs.NewRegistry()

	reg.Register(&fakeProvider{id: "github", matches: func(string) bool { return false }})
	reg.Register(&fakeProvider{id: "gitlab", matches: func(string) bool { return false }})

	t.Run("get by id", func(t *testing.T) {
		p, err := reg.Get("gitlab")
		require.NoError(t, err)
		assert.Equal(t, "gitlab", p.ID())
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := reg.Get("bitbucket")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no registered provider with id")
	})
}

func TestProvidersOrder(t *testing.T) {
	reg := vcs.NewRegistry()
	assert.Empty(t, reg.Providers())

	reg.Register(&fakeProvider{id: "github"})
	reg.Register(&fakeProvider{id: "gitlab"})

	providers := reg.Providers()
	require.Len(t, providers, 2)
	assert.Equal(t, "github", providers[0].ID())
	assert.Equal(t, "gitlab", providers[1].ID())
}
