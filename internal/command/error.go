package command

import "errors"

var (
	// ErrMissingPath is an error that occurs when a command is invoked
	// without its required path parameter.
	ErrMissingPath = errors.New("path parameter is required")
)
