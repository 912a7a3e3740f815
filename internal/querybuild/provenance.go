package querybuild

import (
	"log/slog"
	"runtime/debug"
)

// VersionFallback is the sentinel version used when the running binary
// carries no usable build information, typically in development and tests.
const VersionFallback = "dev"

// moduleNamespace prefixes module identifiers in provenance properties so
// graph consumers can tell which system wrote a node or edge.
const moduleNamespace = "surveyor"

// Provenance is the (module identifier, package version) pair stamped as
// provenance properties on every node and relationship the compiler
// describes.
type Provenance struct {
	ModuleName    string
	ModuleVersion string
}

// ProvenanceResolver supplies provenance for a schema's source module.
// Injecting the resolver keeps builds reproducible and testable: nothing in
// the compiler reads ambient environment state.
type ProvenanceResolver interface {
	Resolve(module string) Provenance
}

// BuildInfoResolver resolves versions from the running binary's build
// info, falling back to VersionFallback when none is available.
type BuildInfoResolver struct{}

// Resolve implements ProvenanceResolver.
func (BuildInfoResolver) Resolve(module string) Provenance {
	return Provenance{
		ModuleName:    provenanceModuleName(module),
		ModuleVersion: buildVersion(),
	}
}

// StaticResolver resolves every module to a fixed version. Intended for
// tests and for callers that pin the version at startup.
type StaticResolver struct {
	Version string
}

// Resolve implements ProvenanceResolver.
func (r StaticResolver) Resolve(module string) Provenance {
	return Provenance{
		ModuleName:    provenanceModuleName(module),
		ModuleVersion: r.Version,
	}
}

func provenanceModuleName(module string) string {
	if module == "" {
		slog.Warn("schema has no source module set; provenance will read unknown")
		return "unknown"
	}
	return moduleNamespace + ":" + module
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return VersionFallback
	}
	return info.Main.Version
}
