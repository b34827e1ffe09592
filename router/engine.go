package router

import "net/http"

// Route is a single compiled route entry handed to the path-matching
// engine: an HTTP method, a path template in the engine's pattern
// syntax, and the handler to invoke on a match.
type Route struct {
	Method  string
	Path    string
	Handler http.Handler
}

// MatchKind discriminates the possible outcomes of a dispatch lookup.
type MatchKind int

const (
	// MatchNotFound means no route template matched the path.
	MatchNotFound MatchKind = iota

	// MatchFound means a route matched both method and path.
	MatchFound

	// MatchMethodNotAllowed means at least one route matched the
	// path but none matched the method.
	MatchMethodNotAllowed
)

// Match is the result of a dispatch lookup.
type Match struct {
	Kind MatchKind

	// Handler is the matched handler. Set only for MatchFound.
	Handler http.Handler

	// Params holds path parameters captured from the template.
	// Set only for MatchFound.
	Params map[string]string

	// Allowed lists the methods registered for the path, in
	// registration order. Set only for MatchMethodNotAllowed.
	Allowed []string
}

// Engine compiles a route table into a Dispatcher. The template
// syntax is engine-defined; the router only understands the optional
// trailing-slash marker, which it resolves before compilation.
type Engine interface {
	Compile(routes []Route) (Dispatcher, error)
}

// Dispatcher resolves a method and a percent-decoded path to a Match.
// Implementations must be safe for concurrent use once built.
type Dispatcher interface {
	Dispatch(method, path string) Match
}
