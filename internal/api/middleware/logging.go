package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveParams are query key fragments whose values never reach the log.
var sensitiveParams = []string{"apikey", "api_key", "password", "secret", "token", "authorization"}

// Logging writes one access record per request. The route is the ServeMux
// pattern that served the request, so lookups for different provider URLs
// group under one route. Health probes log at debug level and server
// errors at error level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			aw := &accessWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(aw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			level := slog.LevelInfo
			switch {
			case aw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case strings.HasSuffix(r.URL.Path, "/api/v1/health"):
				level = slog.LevelDebug
			}
			logger.LogAttrs(r.Context(), level, "http request",
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("route", route),
				slog.String("path", r.URL.Path),
				slog.String("query", scrubQuery(r.URL.RawQuery)),
				slog.Int("status", aw.status),
				slog.Int("bytes", aw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("client", clientIP(r)),
			)
		})
	}
}

// accessWriter records the status code and body size of a response.
type accessWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *accessWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *accessWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *accessWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// scrubQuery replaces the values of sensitive parameters with REDACTED and
// leaves the rest of the raw query untouched.
func scrubQuery(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	for i, pair := range strings.Split(raw, "&") {
		if i > 0 {
			b.WriteByte('&')
		}
		key, _, hasValue := strings.Cut(pair, "=")
		if hasValue && isSensitive(key) {
			b.WriteString(key + "=REDACTED")
			continue
		}
		b.WriteString(pair)
	}
	return b.String()
}

func isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, s := range sensitiveParams {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}
