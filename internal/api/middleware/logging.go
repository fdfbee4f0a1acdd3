package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// loggedResponse records what a handler sent so the request can be
// logged once it finishes
type loggedResponse struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (lr *loggedResponse) WriteHeader(status int) {
	lr.status = status
	lr.ResponseWriter.WriteHeader(status)
}

func (lr *loggedResponse) Write(b []byte) (int, error) {
	n, err := lr.ResponseWriter.Write(b)
	lr.bytes += n
	return n, err
}

// Flush forwards to the wrapped writer so event streams keep flowing
// behind the middleware
func (lr *loggedResponse) Flush() {
	if f, ok := lr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the wrapped writer to http.ResponseController; the
// events handler relies on it to adjust its write deadline
func (lr *loggedResponse) Unwrap() http.ResponseWriter {
	return lr.ResponseWriter
}

// Logging writes one log line per finished request
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lr := &loggedResponse{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(lr, r)

			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.Int("status", lr.status),
				slog.Int("bytes", lr.bytes),
				slog.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
