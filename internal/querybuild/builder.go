package querybuild

import (
	"github.com/surveyorhq/surveyor/internal/ontology"
)

// Builder compiles schema descriptors to query text.
//
// A Builder holds no per-call state: its fields are the injected
// collaborators (ontology registry, provenance resolver), fixed at
// construction. Builders are safe for concurrent use.
type Builder struct {
	registry *ontology.Registry // nil means no ontology layer
	resolver ProvenanceResolver
}

// Option configures a Builder.
type Option func(*Builder)

// WithOntologyRegistry supplies the registry consulted for derived
// ontology properties. Without it, ingestion queries carry no ontology
// clause.
func WithOntologyRegistry(r *ontology.Registry) Option {
	return func(b *Builder) {
		b.registry = r
	}
}

// WithProvenanceResolver overrides the provenance source. The default
// reads the binary's build info and falls back to VersionFallback.
func WithProvenanceResolver(r ProvenanceResolver) Option {
	return func(b *Builder) {
		b.resolver = r
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{resolver: BuildInfoResolver{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
