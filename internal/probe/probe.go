// Package probe implements the filesystem inspection core. It exposes two
// stateless operations: an existence check that never fails and a metadata
// retrieval that performs a single stat of the given path and assembles a
// normalized, platform-independent [Metadata] record from the result.
package probe

import (
	"fmt"
	"os"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Handler is the principal implementation of the filesystem probing layer.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new probing [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// Exists reports whether a single stat of the path succeeds. Any probe
// failure folds into false; existence checks never distinguish "does not
// exist" from "could not be probed".
func (h *Handler) Exists(path string) bool {
	if _, err := h.osHandler.Stat(path); err != nil {
		return false
	}

	return true
}

// Metadata performs exactly one stat of the path and returns its normalized
// [Metadata] record. The stat follows symlinks; a broken symlink fails the
// probe. There is no retry and no partial result.
func (h *Handler) Metadata(path string) (*Metadata, error) {
	info, err := h.osHandler.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("(probe) failed to stat: %w", err)
	}

	return newMetadata(info)
}
