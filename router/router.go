package router

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/vyrodovalexey/avarouter/cache"
	"github.com/vyrodovalexey/avarouter/observability"
)

// cacheKeySeparator joins method and path into a match cache key.
// Methods are NUL-free, so the first NUL always delimits the method
// and keys cannot collide even if the decoded path contains NUL.
const cacheKeySeparator = "\x00"

// route is a single registered route table entry. The handler is
// already wrapped with its per-route middleware.
type route struct {
	method  string
	path    string
	handler http.Handler
}

// Router selects the handler for an incoming request's method and
// path, applies the configured middleware chains, and produces
// responses for unmatched and disallowed routes.
//
// The route table is mutable until Start is called and frozen
// afterwards; ServeHTTP may then be invoked concurrently.
type Router struct {
	mu sync.RWMutex

	routes      []route
	middlewares []Middleware
	prefix      string
	fallback    http.Handler

	cacheCapacity int
	matchCache    *cache.LRU[Match]

	engine   Engine
	renderer ErrorRenderer
	logger   observability.Logger

	running    bool
	dispatcher Dispatcher
}

// New creates a Router. It fails if an option requests an invalid
// match cache capacity.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		cacheCapacity: DefaultCacheCapacity,
		engine:        NewSegmentEngine(),
		renderer:      NewJSONErrorRenderer(),
		logger:        observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.cacheCapacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheCapacity, r.cacheCapacity)
	}

	r.matchCache = cache.New[Match](r.cacheCapacity)

	return r, nil
}

// AddRoute appends a route to the table. The template is stripped of
// a single leading slash; the router prefix is applied later, at
// start time. Route middlewares wrap the handler innermost-first: the
// first middleware given is the outermost of this route's own chain,
// and the handler runs last.
func (r *Router) AddRoute(method, path string, handler http.Handler, middlewares ...Middleware) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%w: cannot add route", ErrRouterStarted)
	}
	if method == "" {
		return ErrEmptyMethod
	}

	r.routes = append(r.routes, route{
		method:  method,
		path:    strings.TrimPrefix(path, "/"),
		handler: wrap(middlewares, handler),
	})

	return nil
}

// Prefix prepends a path segment to every route registered on this
// router. Repeated calls compose with the most recent call outermost.
func (r *Router) Prefix(prefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%w: cannot prefix routes", ErrRouterStarted)
	}

	if segment := strings.Trim(prefix, "/"); segment != "" {
		r.prefix = "/" + segment + r.prefix
	}

	return nil
}

// Merge copies every route of the given router into this one. Copied
// templates are rewritten with the other router's current prefix and
// copied handlers are wrapped with its router-wide middleware, so the
// other router's prefix and middleware are consumed at merge time.
// Mutating the other router afterwards does not affect the copies.
func (r *Router) Merge(other *Router) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%w: cannot merge routers", ErrRouterStarted)
	}

	for _, rt := range other.routes {
		path := rt.path
		if prefix := strings.TrimPrefix(other.prefix, "/"); prefix != "" {
			path = prefix + "/" + path
		}

		r.routes = append(r.routes, route{
			method:  rt.method,
			path:    path,
			handler: wrap(other.middlewares, rt.handler),
		})
	}

	return nil
}

// Stack prepends router-wide middleware, in the order given, to the
// existing chain: a later Stack call wraps everything stacked before
// it. Router-wide middleware is applied once, at start time, to every
// registered route, and never to the fallback handler.
func (r *Router) Stack(middlewares ...Middleware) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%w: cannot stack middleware", ErrRouterStarted)
	}

	stacked := make([]Middleware, 0, len(middlewares)+len(r.middlewares))
	stacked = append(stacked, middlewares...)
	stacked = append(stacked, r.middlewares...)
	r.middlewares = stacked

	return nil
}

// SetFallback sets the handler invoked when no route matches and no
// redirect applies. Router-wide middleware does not apply to it.
func (r *Router) SetFallback(handler http.Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%w: cannot set fallback", ErrRouterStarted)
	}

	r.fallback = handler

	return nil
}

// RouteInfo describes a registered route table entry.
type RouteInfo struct {
	Method string
	Path   string
}

// Routes returns a snapshot of the registered route table, with
// templates as given at registration (prefix not yet applied).
func (r *Router) Routes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]RouteInfo, len(r.routes))
	for i, rt := range r.routes {
		infos[i] = RouteInfo{Method: rt.method, Path: rt.path}
	}
	return infos
}

// Start freezes the route table, compiles it with the path-matching
// engine, and enables dispatch. It fails on an already started router
// and on an empty route table.
func (r *Router) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrRouterStarted
	}
	if len(r.routes) == 0 {
		return ErrNoRoutes
	}

	dispatcher, err := r.engine.Compile(r.compile())
	if err != nil {
		return fmt.Errorf("compile routes: %w", err)
	}

	r.dispatcher = dispatcher
	r.running = true

	r.logger.Info("router started",
		observability.Int("routes", len(r.routes)),
		observability.Int("cache_capacity", r.cacheCapacity))

	return nil
}

// compile builds the final prefixed, canonicalized, middleware-wrapped
// route list handed to the engine. Must be called with lock held.
func (r *Router) compile() []Route {
	compiled := make([]Route, 0, len(r.routes))

	for _, rt := range r.routes {
		handler := wrap(r.middlewares, rt.handler)
		uri := r.prefix + "/" + rt.path

		canonical, redirecting, ok := splitTrailingSlash(uri)
		if !ok {
			compiled = append(compiled, Route{Method: rt.method, Path: uri, Handler: handler})
			continue
		}

		compiled = append(compiled, Route{Method: rt.method, Path: canonical, Handler: handler})
		if redirecting != "" {
			compiled = append(compiled, Route{Method: rt.method, Path: redirecting, Handler: redirectHandler()})
		}
	}

	return compiled
}

// Stop discards the compiled dispatcher and resets the running flag.
// This exists for process-level restart of the owning server;
// re-registration after Stop is not supported.
func (r *Router) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dispatcher = nil
	r.running = false
}

// ServeHTTP dispatches the request to the matching handler, the
// fallback, or an error response.
//
// Matching runs against the percent-decoded request path, so %C3%B6
// matches a literal ö in a template. This also decodes an encoded
// %2F into a literal separator before matching, which can change the
// route selected by segment-based templates; that is a documented
// limitation of decoding before matching, not one this router tries
// to correct.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	running := r.running
	dispatcher := r.dispatcher
	fallback := r.fallback
	r.mu.RUnlock()

	if !running || dispatcher == nil {
		r.logger.Error("request dispatched before start",
			observability.Error(ErrRouterNotStarted),
			observability.String("method", req.Method),
			observability.String("path", req.URL.Path))
		r.renderer.RenderError(w, req, http.StatusInternalServerError)
		return
	}

	method := req.Method
	path := req.URL.Path

	key := method + cacheKeySeparator + path
	match, ok := r.matchCache.Get(key)
	if !ok {
		match = dispatcher.Dispatch(method, path)
		r.matchCache.Set(key, match)
	}

	switch match.Kind {
	case MatchFound:
		getRouterMetrics().dispatchTotal.WithLabelValues(resultFound).Inc()
		req = req.WithContext(contextWithParams(req.Context(), match.Params))
		match.Handler.ServeHTTP(w, req)

	case MatchNotFound:
		getRouterMetrics().dispatchTotal.WithLabelValues(resultNotFound).Inc()
		if fallback != nil {
			fallback.ServeHTTP(w, req)
			return
		}
		r.renderer.RenderError(w, req, http.StatusNotFound)

	case MatchMethodNotAllowed:
		getRouterMetrics().dispatchTotal.WithLabelValues(resultMethodNotAllowed).Inc()
		w.Header().Set("Allow", strings.Join(match.Allowed, ", "))
		r.renderer.RenderError(w, req, http.StatusMethodNotAllowed)

	default:
		// Unreachable with a correct engine.
		panic(fmt.Errorf("%w: kind %d", ErrUnrecognizedMatch, match.Kind))
	}
}

// CacheStats returns a snapshot of the match cache statistics.
func (r *Router) CacheStats() cache.Stats {
	return r.matchCache.Stats()
}
