package router

import "errors"

// Sentinel errors for router operations.
var (
	// ErrInvalidCacheCapacity indicates that a non-positive match
	// cache capacity was requested at construction time.
	ErrInvalidCacheCapacity = errors.New("cache capacity must be positive")

	// ErrEmptyMethod indicates that a route was registered with an
	// empty HTTP method.
	ErrEmptyMethod = errors.New("http method must not be empty")

	// ErrRouterStarted indicates that a structural mutation or a
	// duplicate start was attempted after the router started.
	ErrRouterStarted = errors.New("router already started")

	// ErrRouterNotStarted indicates that a request was dispatched
	// before the router started.
	ErrRouterNotStarted = errors.New("router not started")

	// ErrNoRoutes indicates that a start was attempted with an
	// empty route table.
	ErrNoRoutes = errors.New("no routes registered")

	// ErrUnrecognizedMatch indicates that the path-matching engine
	// returned a match kind this router does not know. It marks an
	// invariant violation in the engine, not a runtime condition.
	ErrUnrecognizedMatch = errors.New("unrecognized match result")
)
