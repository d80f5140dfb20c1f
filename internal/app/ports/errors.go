// Package ports declares the interfaces the engine's use cases depend on
// and the sentinel errors adapters translate into.
package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
