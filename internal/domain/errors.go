package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText      = errors.New("task text cannot be empty")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidDate    = errors.New("invalid date (want YYYY-MM-DD)")
	ErrSlotEmpty      = errors.New("storage slot is empty")
	ErrCorruptData    = errors.New("stored task list is corrupt")
	ErrConfigExists   = errors.New("config file already exists")
	ErrUnknownBackend = errors.New("unknown storage backend")
)
