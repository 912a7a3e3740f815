// Package schema defines the declarative descriptor model the query
// compiler consumes: node schemas, relationship schemas, and the property
// references that say where each value comes from at runtime.
//
// Everything in this package is an immutable value object. Descriptors are
// constructed once at process start, read many times by the compiler, and
// never mutated, which makes them safe to share across goroutines without
// synchronization.
//
// The model deliberately has no behavior beyond validation and rendering:
// all query-text assembly lives in internal/querybuild.
package schema
