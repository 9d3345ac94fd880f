package catalog

import "errors"

var (
	// ErrNotFound indicates the requested collection or item doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownType indicates an unrecognized collection type string.
	ErrUnknownType = errors.New("unknown collection type")
)
