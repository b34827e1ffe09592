package router

import "github.com/vyrodovalexey/avarouter/observability"

// DefaultCacheCapacity is the match cache capacity used when no
// WithCacheCapacity option is given.
const DefaultCacheCapacity = 512

// Option is a functional option for configuring a Router.
type Option func(*Router)

// WithCacheCapacity sets the match cache capacity. A non-positive
// value makes New fail with ErrInvalidCacheCapacity.
func WithCacheCapacity(capacity int) Option {
	return func(r *Router) {
		r.cacheCapacity = capacity
	}
}

// WithEngine sets the path-matching engine used to compile and
// dispatch the route table. Defaults to the segment engine.
func WithEngine(engine Engine) Option {
	return func(r *Router) {
		r.engine = engine
	}
}

// WithErrorRenderer sets the renderer used for not-found,
// method-not-allowed, and internal error responses.
func WithErrorRenderer(renderer ErrorRenderer) Option {
	return func(r *Router) {
		r.renderer = renderer
	}
}

// WithLogger sets the logger used for lifecycle notices. Routing
// outcomes are responses, not log events; the router stays silent
// about them.
func WithLogger(logger observability.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}
