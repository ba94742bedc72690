package domain

import "errors"

// Domain errors represent pipeline failures.
// Adapters wrap these with context so callers can use errors.Is.
var (
	// ErrUpstreamFetch indicates a network or auth failure reaching a collaborator.
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrParse indicates malformed JSON in a source file.
	ErrParse = errors.New("parse failed")

	// ErrValidation indicates an upstream response with an unexpected shape.
	ErrValidation = errors.New("unexpected response shape")

	// ErrNoRecordsRetrieved indicates files were resolved but none could be read.
	ErrNoRecordsRetrieved = errors.New("no source files could be retrieved")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
