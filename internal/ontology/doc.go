// Package ontology models the derived property layer computed on top of
// raw module properties: per-module mapping tables that say which node
// fields feed which normalized ontology fields and through which
// derivation strategy.
//
// The package owns the mapping model, a registry keyed by node label, and
// the mechanism for consuming mapping tables authored as YAML documents
// (CUE-validated, then decoded). The mapping data itself ships separately;
// this package never hardcodes a provider table.
package ontology
