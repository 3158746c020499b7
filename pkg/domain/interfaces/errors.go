package interfaces

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all repository implementations
var (
	// ErrNotFound is returned when an entity id is absent from its collection
	ErrNotFound = goerr.New("record not found")

	// ErrRevisionMismatch is returned when an Update's expected revision no
	// longer matches the stored one (a concurrent writer got there first)
	ErrRevisionMismatch = goerr.New("revision mismatch")
)
