// Package router mounts a huma API next to the operational endpoints
// (liveness, readiness and metrics) on a [http.ServeMux].
package router

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
)

// Option configures the huma API, in order.
type Option func(huma.API)

func New(
	title, version string,
	readiness http.HandlerFunc,
	metrics http.HandlerFunc,
	opts ...Option,
) (http.Handler, huma.API) {
	mux := http.NewServeMux()
	mux.HandleFunc("/liveness", func(http.ResponseWriter, *http.Request) {})
	mux.HandleFunc("/readiness", readiness)
	mux.HandleFunc("/metrics", metrics)

	api := humago.New(mux, huma.DefaultConfig(title, version))
	for _, opt := range opts {
		opt(api)
	}

	return mux, api
}

// OptUseMiddleware adds middlewares to operations registered after it.
func OptUseMiddleware(middlewares ...func(huma.Context, func(huma.Context))) Option {
	return func(api huma.API) { api.UseMiddleware(middlewares...) }
}

// OptGroup applies opts to a group of operations mounted at prefix.
func OptGroup(prefix string, opts ...Option) Option {
	return func(api huma.API) {
		group := huma.NewGroup(api, prefix)
		for _, opt := range opts {
			opt(group)
		}
	}
}

// OptAutoRegister registers the operations of server with [huma.AutoRegister].
func OptAutoRegister(server any) Option {
	return func(api huma.API) { huma.AutoRegister(api, server) }
}
