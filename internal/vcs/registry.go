package vcs

import "fmt"

// Registry manages registered Provider implementations and provides lookup
// by ID or reference-based auto-detection.
type Registry struct {
	providers []Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a Provider to the registry. Registration order is
// significant: Detect tries providers in the order they were added, so a
// reference syntax claimed by two providers resolves to the earlier one.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Detect iterates registered providers and returns the first one whose
// MatchesRef method returns true for the given reference.
func (r *Registry) Detect(reference string) (Provider, error) {
	for _, p := range r.providers {
		if p.MatchesRef(reference) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no registered provider matches reference: %s", reference)
}

// Get looks up a registered provider by its ID().
func (r *Registry) Get(id string) (Provider, error) {
	for _, p := range r.providers {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no registered provider with id: %s", id)
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	return r.providers
}
