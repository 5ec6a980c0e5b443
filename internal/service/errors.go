package service

import (
	"errors"

	"github.com/guttosm/pack-planner/internal/packing"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("packing session not found")
	// ErrSessionSaving is returned for edits and commits while a save is in flight.
	ErrSessionSaving = errors.New("packing session is being saved")
	// ErrSessionFinished is returned for edits and commits after the session was saved or closed.
	ErrSessionFinished = errors.New("packing session is no longer editable")
	// ErrSessionClosed is returned by a commit whose session was closed while
	// the save was in flight. The save outcome is discarded.
	ErrSessionClosed = errors.New("packing session was closed during save")
)

// ValidationFailedError is returned by Commit when the session has critical
// field errors. No save was attempted.
type ValidationFailedError struct {
	Result packing.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return MsgCorrectCriticalErrors
}

// SaveError is returned by Commit when the shipments API call failed. The
// session stays open with its data intact.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return saveFailedPrefix + e.Err.Error()
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
