package gitlab

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/puemos/prref/internal/vcs"
)

// DefaultHost is assumed for shorthand references that carry no host.
const DefaultHost = "gitlab.com"

var (
	mrURLPattern   = regexp.MustCompile(`^(?:(?:https?://)?([^/\s]+))/([^/\s]+(?:/[^/\s]+)*)/-/merge_requests/(\d+)/?$`)
	mrShortPattern = regexp.MustCompile(`^([^\s!#]+(?:/[^\s!#]+)*)[!#](\d+)$`)
)

// MRRef identifies a single GitLab merge request. Project holds the full
// namespace path, subgroups included.
type MRRef struct {
	Host    string
	Project string
	Number  int
}

// ProviderID returns "gitlab".
func (r MRRef) ProviderID() string {
	return "gitlab"
}

// URL returns the canonical merge request URL.
func (r MRRef) URL() string {
	return fmt.Sprintf("https://%s/%s/-/merge_requests/%d", r.Host, r.Project, r.Number)
}

// String renders the reference in "project!number" form.
func (r MRRef) String() string {
	return fmt.Sprintf("%s!%d", r.Project, r.Number)
}

// ParseMRRef extracts host, project path, and MR number from a reference
// string. Full URLs carry their own host; shorthand forms like
// "group/project!42" default to gitlab.com. Surrounding whitespace is
// ignored.
func ParseMRRef(reference string) (MRRef, error) {
	trimmed := strings.TrimSpace(reference)

	if m := mrURLPattern.FindStringSubmatch(trimmed); m != nil {
		number, err := strconv.Atoi(m[3])
		if err != nil {
			return MRRef{}, fmt.Errorf("invalid merge request number %q: %w", m[3], err)
		}
		return MRRef{Host: m[1], Project: m[2], Number: number}, nil
	}

	if m := mrShortPattern.FindStringSubmatch(trimmed); m != nil {
		number, err := strconv.Atoi(m[2])
		if err != nil {
			return MRRef{}, fmt.Errorf("invalid merge request number %q: %w", m[2], err)
		}
		return MRRef{Host: DefaultHost, Project: m[1], Number: number}, nil
	}

	return MRRef{}, fmt.Errorf("could not parse merge request reference %q", reference)
}

// IsShortRef reports whether the reference uses the shorthand form rather
// than a full URL.
func IsShortRef(reference string) bool {
	return mrShortPattern.MatchString(strings.TrimSpace(reference))
}

// Provider implements vcs.Provider for GitLab.
type Provider struct{}

// NewProvider creates a GitLab provider.
func NewProvider() *Provider {
	return &Provider{}
}

// ID returns "gitlab".
func (p *Provider) ID() string {
	return "gitlab"
}

// Name returns "GitLab".
func (p *Provider) Name() string {
	return "GitLab"
}

// MatchesRef reports whether the reference is recognizably a GitLab merge
// request. Shorthand forms are claimed only when they use the '!' separator
// or mention a gitlab host, since "owner/repo#1" style references belong to
// other providers.
func (p *Provider) MatchesRef(reference string) bool {
	trimmed := strings.TrimSpace(reference)
	if mrURLPattern.MatchString(trimmed) {
		return true
	}
	if !mrShortPattern.MatchString(trimmed) {
		return false
	}
	return strings.Contains(trimmed, "!") || strings.Contains(trimmed, "gitlab")
}

// ParseRef parses the reference into a merge request ref.
func (p *Provider) ParseRef(reference string) (vcs.Ref, error) {
	ref, err := ParseMRRef(reference)
	if err != nil {
		return nil, err
	}
	return ref, nil
}
