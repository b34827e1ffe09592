package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileRoutes(t *testing.T, routes []Route) Dispatcher {
	t.Helper()

	dispatcher, err := NewSegmentEngine().Compile(routes)
	require.NoError(t, err)
	return dispatcher
}

func TestSegmentEngine_Compile_InvalidTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"missing leading slash", "users"},
		{"unnamed placeholder", "/users/{}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSegmentEngine().Compile([]Route{
				{Method: http.MethodGet, Path: tt.path, Handler: textHandler("h")},
			})
			assert.Error(t, err)
		})
	}
}

func TestSegmentDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	dispatcher := compileRoutes(t, []Route{
		{Method: http.MethodGet, Path: "/users", Handler: textHandler("list")},
		{Method: http.MethodDelete, Path: "/users/{id}", Handler: textHandler("delete")},
		{Method: http.MethodGet, Path: "/users/{id}", Handler: textHandler("show")},
		{Method: http.MethodGet, Path: "/files/{name}/", Handler: textHandler("dir")},
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantKind   MatchKind
		wantParams map[string]string
	}{
		{
			name:     "literal match",
			method:   http.MethodGet,
			path:     "/users",
			wantKind: MatchFound,
		},
		{
			name:       "placeholder capture",
			method:     http.MethodGet,
			path:       "/users/42",
			wantKind:   MatchFound,
			wantParams: map[string]string{"id": "42"},
		},
		{
			name:     "trailing slash is significant",
			method:   http.MethodGet,
			path:     "/users/42/",
			wantKind: MatchNotFound,
		},
		{
			name:       "slash-terminated template",
			method:     http.MethodGet,
			path:       "/files/report/",
			wantKind:   MatchFound,
			wantParams: map[string]string{"name": "report"},
		},
		{
			name:     "placeholder rejects empty segment",
			method:   http.MethodGet,
			path:     "/users//",
			wantKind: MatchNotFound,
		},
		{
			name:     "unknown path",
			method:   http.MethodGet,
			path:     "/orders",
			wantKind: MatchNotFound,
		},
		{
			name:     "method not allowed",
			method:   http.MethodPost,
			path:     "/users/42",
			wantKind: MatchMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			match := dispatcher.Dispatch(tt.method, tt.path)
			assert.Equal(t, tt.wantKind, match.Kind)

			if tt.wantParams != nil {
				assert.Equal(t, tt.wantParams, match.Params)
			}
			if tt.wantKind == MatchFound {
				assert.NotNil(t, match.Handler)
			}
		})
	}
}

func TestSegmentDispatcher_AllowedMethodOrder(t *testing.T) {
	t.Parallel()

	dispatcher := compileRoutes(t, []Route{
		{Method: http.MethodGet, Path: "/resource", Handler: textHandler("get")},
		{Method: http.MethodDelete, Path: "/resource", Handler: textHandler("delete")},
		{Method: http.MethodGet, Path: "/{catchall}", Handler: textHandler("catch")},
	})

	match := dispatcher.Dispatch(http.MethodPost, "/resource")

	require.Equal(t, MatchMethodNotAllowed, match.Kind)
	assert.Equal(t, []string{http.MethodGet, http.MethodDelete}, match.Allowed)
}

func TestSegmentDispatcher_RegistrationOrderWins(t *testing.T) {
	t.Parallel()

	dispatcher := compileRoutes(t, []Route{
		{Method: http.MethodGet, Path: "/users/me", Handler: textHandler("me")},
		{Method: http.MethodGet, Path: "/users/{id}", Handler: textHandler("show")},
	})

	match := dispatcher.Dispatch(http.MethodGet, "/users/me")

	require.Equal(t, MatchFound, match.Kind)
	assert.Nil(t, match.Params)
}
