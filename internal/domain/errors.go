// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Source-related errors
	ErrSourceTooLarge = errors.New("source exceeds the configured size limit")
	ErrParseFailed    = errors.New("source could not be parsed")

	// Snapshot-related errors
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotExists   = errors.New("snapshot with the same name and digest already exists")
)
