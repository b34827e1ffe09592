// Package router provides the request-dispatch core for an HTTP
// server: it selects the handler for an incoming request's method and
// path, applies per-route and router-wide middleware chains, and
// produces responses for unmatched and disallowed routes.
//
// The text-pattern compilation of route templates is delegated to a
// path-matching engine behind a narrow compile/dispatch contract; a
// segment-based engine with {name} placeholders ships as the default
// and can be swapped with WithEngine.
//
// # Features
//
//   - Append-only route table, frozen when the router starts
//   - Per-route and router-wide middleware composition
//   - Route prefixing and merging of independently built routers
//   - Bounded LRU caching of match results
//   - Canonical permanent redirects for optional trailing slashes
//   - Method-not-allowed aggregation with an ordered Allow header
//   - Fallback handler for unmatched requests
//
// # Usage
//
// Register routes, then start the router and serve it:
//
//	r, err := router.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = r.AddRoute("GET", "/users/{id}", userHandler)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := r.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
//	http.ListenAndServe(addr, r)
//
// Handlers read captured path parameters with router.Param:
//
//	id := router.Param(req, "id")
//
// # Concurrency
//
// Registration methods expect a single control path before traffic
// begins. Once started, ServeHTTP is safe for concurrent use; the
// compiled dispatcher is read-only and the match cache synchronizes
// internally.
package router
