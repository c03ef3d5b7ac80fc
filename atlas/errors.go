package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrNilSource is returned when Build is called without a font source.
	ErrNilSource = errors.New("atlas: nil font source")
)
