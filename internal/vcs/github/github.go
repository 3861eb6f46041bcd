package github

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/puemos/prref/internal/vcs"
)

// prRefPattern accepts full GitHub pull request URLs as well as the
// "owner/repo#number", "owner/repo/number", and "owner/repo/pull/number"
// shorthand forms. Owner and repo segments cannot contain '/', '#', or
// whitespace, which keeps GitLab-style subgroup paths out.
var prRefPattern = regexp.MustCompile(`^(?:(?:https?://)?(?:www\.)?github\.com/)?([^/\s#]+)/([^/\s#]+)(?:/pull/|/|#)(\d+)/?$`)

// PRRef identifies a single GitHub pull request.
type PRRef struct {
	Owner  string
	Repo   string
	Number int
}

// ProviderID returns "github".
func (r PRRef) ProviderID() string {
	return "github"
}

// URL returns the canonical pull request URL.
func (r PRRef) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", r.Owner, r.Repo, r.Number)
}

// String renders the reference in "owner/repo#number" form.
func (r PRRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// ParsePRRef extracts owner, repo, and PR number from a reference string.
// Accepts full GitHub URLs, "owner/repo#number", "owner/repo/number", and
// "owner/repo/pull/number". Surrounding whitespace is ignored.
func ParsePRRef(reference string) (PRRef, error) {
	m := prRefPattern.FindStringSubmatch(strings.TrimSpace(reference))
	if m == nil {
		return PRRef{}, fmt.Errorf("could not parse pull request reference %q", reference)
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return PRRef{}, fmt.Errorf("invalid pull request number %q: %w", m[3], err)
	}

	return PRRef{Owner: m[1], Repo: m[2], Number: number}, nil
}

// Provider implements vcs.Provider for GitHub.
type Provider struct{}

// NewProvider creates a GitHub provider.
func NewProvider() *Provider {
	return &Provider{}
}

// ID returns "github".
func (p *Provider) ID() string {
	return "github"
}

// Name returns "GitHub".
func (p *Provider) Name() string {
	return "GitHub"
}

// MatchesRef reports whether the reference is a recognizable GitHub pull
// request reference.
func (p *Provider) MatchesRef(reference string) bool {
	_, err := ParsePRRef(reference)
	return err == nil
}

// ParseRef parses the reference into a pull request ref.
func (p *Provider) ParseRef(reference string) (vcs.Ref, error) {
	ref, err := ParsePRRef(reference)
	if err != nil {
		return nil, err
	}
	return ref, nil
}
