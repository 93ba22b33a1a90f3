package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetrics получатель HTTP метрик
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута
func MetricsMiddleware(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

// Logging пишет строку лога на каждый запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			format := "%s %s - %d in %s (request_id=%s)"
			args := []interface{}{r.Method, r.URL.Path, rec.status, time.Since(start), GetRequestID(r.Context())}
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(format, args...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(format, args...)
			default:
				logger.Info(format, args...)
			}
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
