package querybuild

import (
	"errors"
	"fmt"
)

// BuildErrorCode categorizes build-time failures.
type BuildErrorCode string

const (
	// ErrCodeInvalidSchema indicates a node schema violating a structural
	// invariant (missing id, reserved property, ...).
	ErrCodeInvalidSchema BuildErrorCode = "INVALID_SCHEMA"

	// ErrCodeUndeclaredRelationship indicates a relationship selection
	// containing a relationship the schema does not declare.
	ErrCodeUndeclaredRelationship BuildErrorCode = "UNDECLARED_RELATIONSHIP"

	// ErrCodeUnconstructedRelProperties indicates relationship properties
	// that were never built with schema.NewRelProperties, usually a
	// schema definition that assigned the zero value by accident.
	ErrCodeUnconstructedRelProperties BuildErrorCode = "UNCONSTRUCTED_REL_PROPERTIES"

	// ErrCodeInvalidMatchLink indicates a matchlink schema missing its
	// source matcher/label or the sub-resource scope properties.
	ErrCodeInvalidMatchLink BuildErrorCode = "INVALID_MATCHLINK"
)

// BuildError is a build-time failure of query construction. Build errors
// surface before any query text is produced, so no partial or invalid
// query ever reaches the execution layer.
type BuildError struct {
	// Code identifies the error category.
	Code BuildErrorCode

	// Message is a human-readable description, including corrective
	// guidance where the mistake has a known fix.
	Message string

	// SchemaLabel identifies the node schema involved, when known.
	SchemaLabel string

	// RelLabel and TargetLabel identify the relationship involved, when
	// the failure is relationship-scoped.
	RelLabel    string
	TargetLabel string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch {
	case e.RelLabel != "" && e.TargetLabel != "":
		return fmt.Sprintf("%s: %s (rel=%s, target=%s)", e.Code, e.Message, e.RelLabel, e.TargetLabel)
	case e.SchemaLabel != "":
		return fmt.Sprintf("%s: %s (schema=%s)", e.Code, e.Message, e.SchemaLabel)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsBuildError reports whether err is a BuildError with the given code.
// Uses errors.As to handle wrapped errors.
func IsBuildError(err error, code BuildErrorCode) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func newUnconstructedRelPropertiesError(relLabel, targetLabel string) *BuildError {
	return &BuildError{
		Code: ErrCodeUnconstructedRelProperties,
		Message: "relationship properties were not constructed; build them with " +
			"schema.NewRelProperties(...) instead of assigning a zero schema.RelProperties value",
		RelLabel:    relLabel,
		TargetLabel: targetLabel,
	}
}
