// Package config provides declarative YAML route tables for the
// avarouter core. Handlers and middleware are referenced by name and
// resolved against a Registry at build time.
package config

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vyrodovalexey/avarouter/router"
)

// RouteConfig declares a single route.
type RouteConfig struct {
	// Method is the HTTP method of the route.
	Method string `yaml:"method"`

	// Path is the route template, in the engine's pattern syntax.
	Path string `yaml:"path"`

	// Handler names the registered handler to invoke.
	Handler string `yaml:"handler"`

	// Middlewares names the per-route middleware chain, outermost first.
	Middlewares []string `yaml:"middlewares,omitempty"`
}

// Config declares a route table.
type Config struct {
	// Prefix is an optional path prefix for all declared routes.
	Prefix string `yaml:"prefix,omitempty"`

	// Routes is the ordered route list.
	Routes []RouteConfig `yaml:"routes"`

	// Fallback optionally names the handler for unmatched requests.
	Fallback string `yaml:"fallback,omitempty"`
}

// Load parses a Config from YAML.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile parses a Config from a YAML file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // config path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks the declared routes for missing fields.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return fmt.Errorf("config must declare at least one route")
	}

	for i, rt := range c.Routes {
		if rt.Method == "" {
			return fmt.Errorf("route %d: method is required", i)
		}
		if rt.Path == "" {
			return fmt.Errorf("route %d: path is required", i)
		}
		if rt.Handler == "" {
			return fmt.Errorf("route %d: handler is required", i)
		}
	}

	return nil
}

// Registry resolves handler and middleware names declared in a Config.
type Registry struct {
	handlers    map[string]http.Handler
	middlewares map[string]router.Middleware
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:    make(map[string]http.Handler),
		middlewares: make(map[string]router.Middleware),
	}
}

// RegisterHandler registers a named handler.
func (r *Registry) RegisterHandler(name string, handler http.Handler) {
	r.handlers[name] = handler
}

// RegisterHandlerFunc registers a named handler function.
func (r *Registry) RegisterHandlerFunc(name string, handler http.HandlerFunc) {
	r.handlers[name] = handler
}

// RegisterMiddleware registers a named middleware.
func (r *Registry) RegisterMiddleware(name string, mw router.Middleware) {
	r.middlewares[name] = mw
}

// handler resolves a handler name.
func (r *Registry) handler(name string) (http.Handler, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown handler: %s", name)
	}
	return h, nil
}

// middleware resolves a middleware name.
func (r *Registry) middleware(name string) (router.Middleware, error) {
	mw, ok := r.middlewares[name]
	if !ok {
		return nil, fmt.Errorf("unknown middleware: %s", name)
	}
	return mw, nil
}

// Apply registers the declared routes, prefix, and fallback on the
// given router, resolving names through the registry. The router must
// not have been started.
func Apply(cfg *Config, rt *router.Router, reg *Registry) error {
	if cfg.Prefix != "" {
		if err := rt.Prefix(cfg.Prefix); err != nil {
			return err
		}
	}

	for i, rc := range cfg.Routes {
		handler, err := reg.handler(rc.Handler)
		if err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}

		middlewares := make([]router.Middleware, 0, len(rc.Middlewares))
		for _, name := range rc.Middlewares {
			mw, err := reg.middleware(name)
			if err != nil {
				return fmt.Errorf("route %d: %w", i, err)
			}
			middlewares = append(middlewares, mw)
		}

		if err := rt.AddRoute(rc.Method, rc.Path, handler, middlewares...); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
	}

	if cfg.Fallback != "" {
		handler, err := reg.handler(cfg.Fallback)
		if err != nil {
			return fmt.Errorf("fallback: %w", err)
		}
		if err := rt.SetFallback(handler); err != nil {
			return err
		}
	}

	return nil
}
