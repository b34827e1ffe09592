package router

import "net/http"

// Middleware wraps a handler with additional behavior. The returned
// handler decides whether and when to call the wrapped one.
type Middleware func(http.Handler) http.Handler

// wrap applies an outer-first middleware chain to a handler: the
// first middleware in the slice becomes the outermost wrapper.
func wrap(middlewares []Middleware, handler http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
