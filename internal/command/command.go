// Package command implements the host-facing command boundary. It marshals
// the two probing operations onto an HTTP surface: inputs arrive as query
// parameters, results leave as JSON, and any probe failure is rendered as a
// single string-typed error payload.
package command

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/fsprobe/fsprobe/internal/probe"
	"github.com/google/uuid"
)

type probeProvider interface {
	Exists(path string) bool
	Metadata(path string) (*probe.Metadata, error)
}

// Handler wires the probing core to the HTTP command surface.
type Handler struct {
	probeHandler probeProvider

	version   string
	gitCommit string
	buildTime string
}

// NewHandler returns a pointer to a new command [Handler].
func NewHandler(probeHandler probeProvider) *Handler {
	return &Handler{
		probeHandler: probeHandler,
		version:      "dev",
		gitCommit:    "unknown",
		buildTime:    "unknown",
	}
}

// SetVersionInfo sets the build information reported by the version command.
func (h *Handler) SetVersionInfo(version, gitCommit, buildTime string) {
	h.version = version
	h.gitCommit = gitCommit
	h.buildTime = buildTime
}

// ErrorResponse is the error payload of a failed command.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ExistsResponse is the result payload of the exists command.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// VersionResponse is the result payload of the version command.
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
}

// Routes returns the served command routes.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/exists", h.Exists)
	mux.HandleFunc("GET /api/metadata", h.Metadata)
	mux.HandleFunc("GET /api/version", h.Version)

	return mux
}

// Exists handles GET /api/exists?path=<path>. The probe itself never fails;
// only a missing path parameter is an error.
func (h *Handler) Exists(w http.ResponseWriter, r *http.Request) {
	id := requestID(r)
	w.Header().Set("X-Request-ID", id)

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, ErrMissingPath.Error())

		return
	}

	exists := h.probeHandler.Exists(path)

	slog.Debug("Served existence check.",
		"path", path,
		"exists", exists,
		"id", id,
	)

	writeJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// Metadata handles GET /api/metadata?path=<path>. A failed probe maps to a
// transport status code, but the payload stays the string-rendered failure.
func (h *Handler) Metadata(w http.ResponseWriter, r *http.Request) {
	id := requestID(r)
	w.Header().Set("X-Request-ID", id)

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, ErrMissingPath.Error())

		return
	}

	md, err := h.probeHandler.Metadata(path)
	if err != nil {
		status := statusForError(err)

		// "Not found" is routine for callers racing the filesystem.
		if status == http.StatusNotFound {
			slog.Debug("Metadata probe of missing path.",
				"path", path,
				"id", id,
			)
		} else {
			slog.Error("Metadata probe failed.",
				"err", err,
				"path", path,
				"id", id,
			)
		}

		writeError(w, status, err.Error())

		return
	}

	slog.Debug("Served metadata.",
		"path", path,
		"size", humanize.IBytes(md.Size),
		"id", id,
	)

	writeJSON(w, http.StatusOK, md)
}

// Version handles GET /api/version.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Request-ID", requestID(r))

	writeJSON(w, http.StatusOK, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
	})
}

// requestID returns the caller-supplied request ID, or assigns a fresh one.
func requestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}

	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response.", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// statusForError maps a probe failure onto a transport status code.
func statusForError(err error) int {
	if errors.Is(err, fs.ErrNotExist) {
		return http.StatusNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return http.StatusForbidden
	}

	return http.StatusInternalServerError
}
