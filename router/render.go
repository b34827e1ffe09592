package router

import (
	"io"
	"net/http"
	"strings"
)

// ErrorRenderer produces the response body for routing outcomes that
// carry an HTTP error status (not found, method not allowed, internal
// errors). Headers already set on the writer, such as Allow, must be
// preserved.
type ErrorRenderer interface {
	RenderError(w http.ResponseWriter, r *http.Request, status int)
}

// ErrorRendererFunc adapts a function to the ErrorRenderer interface.
type ErrorRendererFunc func(w http.ResponseWriter, r *http.Request, status int)

// RenderError calls f.
func (f ErrorRendererFunc) RenderError(w http.ResponseWriter, r *http.Request, status int) {
	f(w, r, status)
}

// jsonErrorRenderer writes a minimal JSON error body.
type jsonErrorRenderer struct{}

// NewJSONErrorRenderer returns the default error renderer, which
// writes bodies like {"error":"not found"}.
func NewJSONErrorRenderer() ErrorRenderer {
	return jsonErrorRenderer{}
}

// RenderError writes the JSON error body for the given status.
func (jsonErrorRenderer) RenderError(w http.ResponseWriter, _ *http.Request, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":"`+strings.ToLower(http.StatusText(status))+`"}`)
}
