package services

import "errors"

var (
	ErrDuplicateFolder = errors.New("folder already exists")
	ErrNotFound        = errors.New("not found")
	ErrInvalidName     = errors.New("folder name is required")
	ErrInvalidURL      = errors.New("url is required")
	// ErrUnsavedCorruptState blocks writes that would replace a corrupt file
	// that could not be moved aside.
	ErrUnsavedCorruptState = errors.New("refusing to overwrite unreadable state file")
)
