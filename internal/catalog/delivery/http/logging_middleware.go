package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tair/product-catalog/pkg/logger"
)

// LoggingMiddleware writes one line per request at a level chosen by status:
// info for success, warn for 4xx and error for 5xx.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &recordingWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		ctx := r.Context()
		var event *zerolog.Event
		switch {
		case rec.status >= 500:
			event = logger.Error(ctx)
		case rec.status >= 400:
			event = logger.Warn(ctx)
		default:
			event = logger.Info(ctx)
		}

		elapsed := time.Since(start)
		event.
			Str("method", r.Method).
			Str("route", routeTemplate(r)).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Int64("content_length", r.ContentLength).
			Dur("duration", elapsed).
			Msg("HTTP request")
	})
}

// recordingWriter captures the status and body size of a response
type recordingWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
