package icebreaker

import "errors"

var (
	// ErrNotFound is returned when a channel, session, member or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when the caller may not perform a write.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidArgument is returned for rejected input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTransient is returned when the store is unreachable. Not retried here.
	ErrTransient = errors.New("store temporarily unavailable")
	// ErrSessionLive is returned when an owner starts a session while the
	// latest one has not ended.
	ErrSessionLive = errors.New("a session is already live for this channel")
	// ErrConflict is returned when a unique document already exists.
	ErrConflict = errors.New("already exists")
	// ErrInvalidDocument is returned when a stored document fails validation on read.
	ErrInvalidDocument = errors.New("invalid document")
)
