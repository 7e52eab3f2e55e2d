package usmap

import "errors"

// Fatal conditions surfaced before any rendering happens. All of them
// are wrapped with context, so match with errors.Is.
var (
	ErrNotFound          = errors.New("input file not found")
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrEmptyData         = errors.New("data is empty")
	ErrMissingColumn     = errors.New("column not found in data")
	ErrNoValueColumn     = errors.New("could not detect value column")
)
