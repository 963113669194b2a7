package xrm

import "errors"

var (
	// ErrMalformedSpecifier is returned when no entry or query could be
	// derived from the input text.
	ErrMalformedSpecifier = errors.New("malformed resource specifier")

	// ErrLengthMismatch is returned when the query name and class have
	// a different number of components.
	ErrLengthMismatch = errors.New("query name and class length mismatch")

	// ErrNotFound is returned when a lookup matched no entry.
	ErrNotFound = errors.New("resource not found")
)
