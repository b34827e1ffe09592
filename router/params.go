package router

import (
	"context"
	"net/http"
)

// paramsKey is the context key under which captured path parameters
// are stored. Each request dispatched through a Router carries its
// parameters under this key for the duration of its handling.
type paramsKey struct{}

// contextWithParams attaches captured path parameters to the context.
func contextWithParams(ctx context.Context, params map[string]string) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// PathParams returns the path parameters captured for the request, or
// nil if the request was not dispatched through a Router.
func PathParams(r *http.Request) map[string]string {
	params, _ := r.Context().Value(paramsKey{}).(map[string]string)
	return params
}

// Param returns a single captured path parameter by name, or the
// empty string if it was not captured.
func Param(r *http.Request, name string) string {
	return PathParams(r)[name]
}
