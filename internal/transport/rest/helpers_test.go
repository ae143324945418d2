package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParam injects a chi URL parameter for handlers tested outside
// the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
