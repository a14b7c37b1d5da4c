package storage

import "errors"

var (
	// ErrNotFound is returned when no session or record exists under the
	// requested id. Callers treat this as "no data yet", not a failure.
	ErrNotFound = errors.New("not found")

	// ErrParse is returned when a stored document cannot be decoded,
	// so callers can distinguish "no session yet" from "corrupted session".
	ErrParse = errors.New("stored data not parseable")

	// ErrWriteFailed is returned when a save could not be durably applied.
	ErrWriteFailed = errors.New("write failed")

	// ErrVersionConflict is returned when an optimistic concurrency check
	// fails: the session was modified since it was loaded.
	ErrVersionConflict = errors.New("version conflict: session was modified by another writer")
)
