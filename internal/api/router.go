package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

// RequestObserver counts finished requests, normally internal/metrics.
type RequestObserver interface {
	Request(route string, code int)
}

type RouterOptions struct {
	// MetricsPath mounts the prometheus handler for Gatherer when set.
	MetricsPath string
	Gatherer    prometheus.Gatherer
	Observer    RequestObserver
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/keypair", h.Keypair)
	mux.HandleFunc("POST /v1/sign", h.Sign)
	mux.HandleFunc("POST /v1/verify", h.Verify)
	mux.HandleFunc("GET /healthz", h.Health)

	if opts.MetricsPath != "" && opts.Gatherer != nil {
		mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return h.instrument(mux, opts.Observer)
}

// RequestID returns the id assigned to the request by the router.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (h *Handler) instrument(mux *http.ServeMux, observer RequestObserver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.New().String()

		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
		w.Header().Set("X-Request-Id", id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(sw, r)

		_, route := mux.Handler(r)
		if route == "" {
			route = "unmatched"
		}
		if observer != nil {
			observer.Request(route, sw.status)
		}

		h.logger(r).WithFields(logrus.Fields{
			"method":   r.Method,
			"route":    route,
			"status":   sw.status,
			"duration": time.Since(start).String(),
		}).Debug("handled request")
	})
}
