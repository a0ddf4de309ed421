package game

import "errors"

var (
	// ErrIndexOutOfRange is returned when a cell index is outside [0,8].
	// It means the caller is broken, not that the user made a bad move.
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrInvalidPlayer   = errors.New("invalid player")
)
