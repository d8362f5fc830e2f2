package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "bengali_food"

// Metrics counts requests and observes their duration per route template.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	labels := []string{"method", "path", "status", "response_code"}
	return &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP requests handled.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time taken to handle HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}
}

// Register adds the collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Middleware wraps the whole handler so that requests the router never
// dispatches (404, 405, CORS preflight) are counted too, under the
// "unmatched" path. Matched requests are labelled with their route template
// so ids in the path never become label values.
func (m *Metrics) Middleware(router *mux.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := routeTemplate(router, r)
			sw := newStatusResponseWriter(w)
			next.ServeHTTP(sw, r)

			label := prometheus.Labels{
				"method":        r.Method,
				"path":          path,
				"status":        sw.StatusClass(),
				"response_code": strconv.Itoa(sw.Code()),
			}
			m.duration.With(label).Observe(time.Since(start).Seconds())
			m.requests.With(label).Inc()
		})
	}
}

const unmatchedPath = "unmatched"

func routeTemplate(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedPath
	}
	tmpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedPath
	}
	return tmpl
}
