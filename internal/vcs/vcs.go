package vcs

// Ref is a parsed reference to a change on a hosting service.
type Ref interface {
	// ProviderID returns the ID of the provider that parsed this reference.
	ProviderID() string

	// URL returns the canonical web URL for the referenced change.
	URL() string
}

// Provider is a hosting service integration.
type Provider interface {
	// ID returns the stable identifier for this provider (e.g. "github").
	ID() string

	// Name returns the human-readable service name.
	Name() string

	// MatchesRef reports whether the reference belongs to this provider.
	MatchesRef(reference string) bool

	// ParseRef parses the reference into a provider-specific Ref.
	ParseRef(reference string) (Ref, error)
}
