package dataset

import "errors"

// Dataset loading errors
var (
	ErrFileAccess        = errors.New("source file is missing or unreadable")
	ErrSchema            = errors.New("source is missing a required column")
	ErrSheetNotFound     = errors.New("source sheet not found")
	ErrUnsupportedFormat = errors.New("unsupported source file format")
	ErrEmptySource       = errors.New("source has no header row")
	ErrNotLoaded         = errors.New("dataset has not been loaded")
)
