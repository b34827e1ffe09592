package router

import (
	"fmt"
	"net/http"
	"strings"
)

// trailingSlashMarker is the template suffix indicating that the
// trailing slash may be omitted.
const trailingSlashMarker = "/?"

// splitTrailingSlash resolves the optional trailing-slash marker on a
// fully prefixed template. For a marked template it returns the
// canonical form (marker stripped) and the slash-terminated form to
// bind to a redirect handler. A marked root template collapses to "/"
// alone, with no redirecting twin. ok reports whether the template
// carried the marker at all.
func splitTrailingSlash(uri string) (canonical, redirecting string, ok bool) {
	if !strings.HasSuffix(uri, trailingSlashMarker) {
		return "", "", false
	}

	canonical = strings.TrimSuffix(uri, trailingSlashMarker)
	if canonical == "" {
		return "/", "", true
	}

	return canonical, canonical + "/", true
}

// redirectHandler permanently redirects a slash-terminated request to
// its canonical path. Requesting the canonical path afterwards hits
// the real handler, so the redirect resolves in a single hop.
func redirectHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		target := path
		if query := r.URL.RawQuery; query != "" {
			target += "?" + query
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Location", target)
		w.WriteHeader(http.StatusPermanentRedirect)
		_, _ = fmt.Fprintf(w, "Canonical resource location: %s", path)
	})
}
