package dataset

import "errors"

// Dataset loading error sentinels.
var (
	ErrMissingColumn     = errors.New("required column missing")
	ErrMalformedRow      = errors.New("malformed row")
	ErrNoRecords         = errors.New("dataset has no records")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)
