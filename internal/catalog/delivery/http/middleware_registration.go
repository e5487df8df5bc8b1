package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tair/product-catalog/internal/catalog/validation"
	"github.com/tair/product-catalog/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// DefaultMaxUploadBytes fits three full size images plus the text fields.
const DefaultMaxUploadBytes = 3*validation.MaxImageSize + 1<<20

// MiddlewareConfig holds configuration for middlewares
type MiddlewareConfig struct {
	EnableLogging  bool
	EnableTracing  bool
	EnableCORS     bool
	EnableRecovery bool
	Timeout        time.Duration
	MaxUploadBytes int64
	CORSOptions    cors.Options
}

// DefaultMiddlewareConfig returns the middleware configuration used by serve.
// A non-positive timeout falls back to 30s.
func DefaultMiddlewareConfig(timeout time.Duration) *MiddlewareConfig {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MiddlewareConfig{
		EnableLogging:  true,
		EnableTracing:  true,
		EnableCORS:     true,
		EnableRecovery: true,
		Timeout:        timeout,
		MaxUploadBytes: DefaultMaxUploadBytes,
		CORSOptions: cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
		},
	}
}

// RegisterMiddlewares installs the configured middlewares on router. They run
// in slice order: recovery wraps everything, request ids are assigned before
// tracing and logging so both can report them.
func RegisterMiddlewares(router *mux.Router, config *MiddlewareConfig) {
	var chain []mux.MiddlewareFunc
	if config.EnableRecovery {
		chain = append(chain, RecoveryMiddleware)
	}
	chain = append(chain, RequestIDMiddleware)
	if config.Timeout > 0 {
		chain = append(chain, TimeoutMiddleware(config.Timeout))
	}
	if config.MaxUploadBytes > 0 {
		chain = append(chain, UploadLimitMiddleware(config.MaxUploadBytes))
	}
	if config.EnableTracing {
		chain = append(chain, TracingMiddleware)
	}
	if config.EnableLogging {
		chain = append(chain, LoggingMiddleware)
	}
	chain = append(chain, SecurityHeadersMiddleware)

	router.Use(chain...)

	logger.Logger.Info().
		Int("count", len(chain)).
		Bool("tracing", config.EnableTracing).
		Bool("logging", config.EnableLogging).
		Dur("timeout", config.Timeout).
		Int64("max_upload_bytes", config.MaxUploadBytes).
		Msg("HTTP middlewares registered")
}

// RecoveryMiddleware turns a panic into a 500 envelope
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context()).
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Panic recovered")

				respondJSON(w, http.StatusInternalServerError, Response{
					Success: false,
					Error:   "Internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// TimeoutMiddleware bounds the time a handler may take
func TimeoutMiddleware(timeout time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "Request timeout")
	}
}

// UploadLimitMiddleware caps the body of product uploads and edits. A body
// over the limit fails multipart parsing and is reported as a form error.
func UploadLimitMiddleware(limit int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDMiddleware keeps an incoming X-Request-ID or assigns a new one and
// echoes it on the response. Loggers built from the request context carry it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(logger.ContextWithRequestID(r.Context(), requestID)))
	})
}

// RequestIDFromContext returns the id set by RequestIDMiddleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	return logger.RequestID(ctx)
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}

// SetupCORS returns the CORS wrapper for the whole server, or a pass-through
// when CORS is disabled.
func SetupCORS(config *MiddlewareConfig) func(http.Handler) http.Handler {
	if !config.EnableCORS {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.New(config.CORSOptions).Handler
}
