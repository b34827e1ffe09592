package router

import (
	"fmt"
	"net/http"
	"strings"
)

// segmentEngine is the default path-matching engine. Templates are
// matched segment by segment; a segment written as {name} captures
// the corresponding non-empty path segment as a parameter. Routes are
// tried in registration order and the first full match wins.
type segmentEngine struct{}

// NewSegmentEngine returns the default path-matching engine.
func NewSegmentEngine() Engine {
	return segmentEngine{}
}

// segment is one compiled template segment. A non-empty param name
// marks a placeholder; otherwise the literal must match exactly.
type segment struct {
	literal string
	param   string
}

// compiledEntry is one compiled route held by the dispatcher.
type compiledEntry struct {
	method   string
	segments []segment
	handler  http.Handler
}

// segmentDispatcher resolves lookups against the compiled entries.
// It is immutable after Compile and safe for concurrent use.
type segmentDispatcher struct {
	entries []compiledEntry
}

// Compile parses every route template into its segment form.
func (segmentEngine) Compile(routes []Route) (Dispatcher, error) {
	entries := make([]compiledEntry, 0, len(routes))

	for _, rt := range routes {
		segments, err := parseTemplate(rt.Path)
		if err != nil {
			return nil, fmt.Errorf("route %s %s: %w", rt.Method, rt.Path, err)
		}

		entries = append(entries, compiledEntry{
			method:   rt.Method,
			segments: segments,
			handler:  rt.Handler,
		})
	}

	return &segmentDispatcher{entries: entries}, nil
}

// parseTemplate splits a template into compiled segments.
func parseTemplate(path string) ([]segment, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("template must start with a slash")
	}

	parts := strings.Split(path, "/")[1:]
	segments := make([]segment, len(parts))

	for i, part := range parts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" {
				return nil, fmt.Errorf("placeholder must be named")
			}
			segments[i] = segment{param: name}
			continue
		}
		segments[i] = segment{literal: part}
	}

	return segments, nil
}

// Dispatch resolves a method and decoded path against the entries in
// registration order. When templates match the path but none matches
// the method, the methods of the matching templates are reported in
// registration order.
func (d *segmentDispatcher) Dispatch(method, path string) Match {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}

	var allowed []string

	for _, entry := range d.entries {
		params, ok := entry.match(parts)
		if !ok {
			continue
		}

		if entry.method == method {
			return Match{Kind: MatchFound, Handler: entry.handler, Params: params}
		}

		if !containsMethod(allowed, entry.method) {
			allowed = append(allowed, entry.method)
		}
	}

	if len(allowed) > 0 {
		return Match{Kind: MatchMethodNotAllowed, Allowed: allowed}
	}

	return Match{Kind: MatchNotFound}
}

// match checks the path segments against the entry's template,
// capturing placeholder values. Placeholders never match an empty
// segment, so a trailing slash stays significant.
func (e *compiledEntry) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(e.segments) {
		return nil, false
	}

	var params map[string]string

	for i, seg := range e.segments {
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, len(e.segments))
			}
			params[seg.param] = parts[i]
			continue
		}

		if parts[i] != seg.literal {
			return nil, false
		}
	}

	return params, true
}

// containsMethod reports whether the method is already collected.
func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}
