package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware opens a server span named after the matched route
// template, e.g. "GET /api/products/{id}", so spans group per endpoint.
func TracingMiddleware(next http.Handler) http.Handler {
	tagged := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := RequestIDFromContext(r.Context()); id != "" {
			trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("request.id", id))
		}
		next.ServeHTTP(w, r)
	})

	return otelhttp.NewHandler(tagged, "catalog-http-request",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + routeTemplate(r)
		}),
	)
}

// routeTemplate returns the mux path template of the matched route, falling
// back to the raw path outside the router.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
