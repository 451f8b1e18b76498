package probe

import "errors"

var (
	// ErrUnsupportedStat is an error that occurs when the operating system
	// returns a stat result of a shape unknown to this build target.
	ErrUnsupportedStat = errors.New("unsupported stat result")
)
