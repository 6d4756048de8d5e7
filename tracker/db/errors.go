package db

import (
	"github.com/pkg/errors"
)

// Sentinel errors surfaced by the store. Callers match them with errors.Is;
// the store wraps them with context at the point of failure.
var (
	// ErrStorageUnavailable means the storage file could not be opened or created.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSchemaMissing means the store holds tables but no recorded schema version.
	ErrSchemaMissing = errors.New("schema version missing")

	// ErrSchemaMismatch means the store was stamped by a build with a different
	// schema version. No automatic migration is attempted.
	ErrSchemaMismatch = errors.New("schema version mismatch")

	// ErrDuplicateName means a client with that name is already registered.
	ErrDuplicateName = errors.New("duplicate client name")

	// ErrAmbiguousClient means more than one registered client carries the same
	// name, which indicates a corrupted registry.
	ErrAmbiguousClient = errors.New("ambiguous client name")

	// ErrClientNotFound means no registered client carries the requested name.
	ErrClientNotFound = errors.New("client not found")

	// ErrPostInsertLookup means a freshly inserted torrent could not be read
	// back within the same transaction. The store cannot be trusted beyond
	// this point and the scan must abort.
	ErrPostInsertLookup = errors.New("post-insert torrent lookup failed")
)
