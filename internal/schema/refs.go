package schema

// Source identifies where a property's runtime value comes from when the
// generated query executes.
type Source int

const (
	// SourceRecord reads the value from the current item of the query's
	// batch parameter. Rendered as item.<field>.
	SourceRecord Source = iota

	// SourceParameter reads the value from a named query parameter bound
	// once per ingestion call and shared by every record in the batch.
	// Rendered as $<name>.
	SourceParameter
)

// PropertyRef describes the runtime source of a single value used inside a
// generated query, plus the matching mode to use when the ref appears in a
// relationship matcher.
//
// PropertyRefs are immutable values created once at schema-definition time.
// The matching flags are only meaningful on matcher refs and are mutually
// exclusive; the zero state means exact match.
type PropertyRef struct {
	// Source selects record access vs. bound parameter.
	Source Source

	// Name is the record field name (SourceRecord) or the parameter name
	// (SourceParameter).
	Name string

	// ExtraIndex requests a dedicated index on this property beyond the
	// baseline id/lastupdated indexes.
	ExtraIndex bool

	// IgnoreCase matches case-insensitively (lower(x) = lower(y)).
	IgnoreCase bool

	// FuzzyIgnoreCase matches on case-insensitive substring containment.
	FuzzyIgnoreCase bool

	// OneToMany matches when the target's value is one of a list supplied
	// on the record, attaching a single node to many others at once.
	OneToMany bool
}

// FromRecord returns a PropertyRef that reads the named field from the
// current batch item.
func FromRecord(field string) PropertyRef {
	return PropertyRef{Source: SourceRecord, Name: field}
}

// FromParameter returns a PropertyRef that reads the named bound parameter,
// supplied once per ingestion call.
func FromParameter(name string) PropertyRef {
	return PropertyRef{Source: SourceParameter, Name: name}
}

// Render returns the query-text form of the reference: item.<field> for
// record access, $<name> for a bound parameter. This is the only place the
// rendering rule lives; callers never stringify refs implicitly.
func (r PropertyRef) Render() string {
	if r.Source == SourceParameter {
		return "$" + r.Name
	}
	return "item." + r.Name
}

// WithExtraIndex returns a copy of the ref flagged for a dedicated index.
func (r PropertyRef) WithExtraIndex() PropertyRef {
	r.ExtraIndex = true
	return r
}

// WithIgnoreCase returns a copy of the ref that matches case-insensitively.
func (r PropertyRef) WithIgnoreCase() PropertyRef {
	r.IgnoreCase = true
	return r
}

// WithFuzzyIgnoreCase returns a copy of the ref that matches on
// case-insensitive containment.
func (r PropertyRef) WithFuzzyIgnoreCase() PropertyRef {
	r.FuzzyIgnoreCase = true
	return r
}

// WithOneToMany returns a copy of the ref that matches against a list
// supplied on the record.
func (r PropertyRef) WithOneToMany() PropertyRef {
	r.OneToMany = true
	return r
}
