// Package citexthttp reads citext.Text values from HTTP requests routed by
// chi.
package citexthttp

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/citext/pkg/citext"
)

// ErrParamNotFound is returned when the request has no parameter with the
// given name.
var ErrParamNotFound = errors.New("citexthttp: parameter not found")

// URLParam returns the chi route parameter key, as sent.
func URLParam(r *http.Request, key string) (citext.Text, error) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || !slices.Contains(rctx.URLParams.Keys, key) {
		return citext.Text{}, ErrParamNotFound
	}
	return citext.Parse(rctx.URLParam(key))
}

// QueryParam returns the first query string value for key, as sent.
func QueryParam(r *http.Request, key string) (citext.Text, error) {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		return citext.Text{}, ErrParamNotFound
	}
	return citext.Parse(values[0])
}
