package types

import "errors"

// Store operation errors. Absence during navigation is a normal outcome and
// is reported as ErrNotFound by point lookups; any other error from a store
// accessor is a genuine storage failure and must be propagated, never
// converted to "no result".
var (
	ErrNotFound             = errors.New("entity not found")
	ErrInvalidID            = errors.New("invalid entity ID")
	ErrInvalidData          = errors.New("invalid entity data")
	ErrReferentialIntegrity = errors.New("deletion blocked by dependent entities")
)

// Entity method errors.
var (
	ErrInvalidTitle      = errors.New("invalid title")
	ErrInvalidType       = errors.New("invalid type value")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
)
