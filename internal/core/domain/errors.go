package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Extraction itself never fails: a field that cannot be recovered is an
// empty string. These errors belong to the layers around the extractor.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingIdentifier indicates a record has no DNI.
	// The DNI is the natural key of a persisted record, so stores refuse it.
	ErrMissingIdentifier = errors.New("record has no DNI")

	// ErrUnknownField indicates a field name outside the form layout.
	ErrUnknownField = errors.New("unknown record field")

	// ErrUnsupportedEncoding indicates an input text encoding label
	// that cannot be decoded.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnknownFixup indicates a text fix-up name that is not registered.
	ErrUnknownFixup = errors.New("unknown fixup")
)
