// Package querybuild compiles declarative schema descriptors into
// parameterized graph-query text: batched ingestion upserts, matchlink
// queries that connect pre-existing nodes, and index-creation statements.
//
// The compiler never touches a network or a database connection. Every
// build call is a pure function of (schema, optional relationship
// selection) to query text: compiling equal inputs twice yields
// byte-identical output, which lets the execution layer cache compiled
// text per schema and selection and retry any generated query safely,
// since all generated queries use idempotent upsert (MERGE) patterns.
//
// Labels and property names cannot be query parameters in the target
// language, so they are embedded as text; every embedded literal value
// goes through EscapeString. Record values and per-call values are always
// parameter references, never interpolated.
//
// Failure behavior splits two ways. Schema-authoring mistakes (an
// undeclared relationship in a selection, a matchlink without a source
// matcher, unconstructed relationship properties) are build-time errors:
// no partial query text is ever returned. Ontology-mapping problems
// (missing or malformed extra parameters, unknown source fields) degrade
// one derived field at a time with a logged warning and never abort the
// query.
package querybuild
