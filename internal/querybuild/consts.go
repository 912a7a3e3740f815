package querybuild

// Reserved names on the generated query surface. These are wire-level
// contract with the execution/cleanup engine: staleness scans key on the
// provenance and lastupdated properties, and scoped matchlink cleanup keys
// on the _sub_resource_* pair.
const (
	// BatchParameter is the query parameter bound to the list of records;
	// every ingestion query UNWINDs it.
	BatchParameter = "$DictList"

	// ModuleNameProperty and ModuleVersionProperty are the provenance
	// marker stamped on every node and relationship the compiler touches.
	ModuleNameProperty    = "_module_name"
	ModuleVersionProperty = "_module_version"

	// LastUpdatedProperty is refreshed by schemas on every sync run and
	// indexed for staleness scans.
	LastUpdatedProperty = "lastupdated"

	// OntologyPrefix namespaces derived ontology fields away from raw
	// module properties.
	OntologyPrefix = "_ont_"

	// OntologySourceProperty records which source module supplied the
	// node's ontology layer.
	OntologySourceProperty = "_ont_source"

	// SubResourceLabelProperty and SubResourceIDProperty scope matchlink
	// relationships for later cleanup.
	SubResourceLabelProperty = "_sub_resource_label"
	SubResourceIDProperty    = "_sub_resource_id"
)
