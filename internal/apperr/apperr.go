// Package apperr defines the error kinds the service boundaries translate
// external failures into. Transport-level errors never cross a service
// boundary unclassified.
package apperr

import "errors"

var (
	// ErrConfiguration means a required credential or client is missing.
	// Fatal to the whole operation.
	ErrConfiguration = errors.New("service not configured")

	// ErrRetrieval means the query embedding could not be computed.
	// Fatal to that search call only.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration means the generative backend failed in a way that
	// could not be degraded (stage-1 transport failure).
	ErrGeneration = errors.New("generation failed")
)
