package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute labels requests no route handled, so they are not counted under the last middleware path.
const unmatchedRoute = "unmatched"

// Metrics records request counts and latencies per route.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the HTTP collectors on reg, labelled with the app name.
func NewMetrics(reg prometheus.Registerer, app string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"app": app}
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of handled HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler observes every request passing through it.
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Route is only resolved after routing, so read it once the chain returns.
		// Label values outlive the request; c.Method and c.Route().Path are not copied by fiber.
		method := utils.CopyString(c.Method())
		route := unmatchedRoute
		if !unmatched(err) {
			route = utils.CopyString(c.Route().Path)
		}
		m.requests.WithLabelValues(method, route, strconv.Itoa(statusOf(c, err))).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// unmatched reports whether err is the router's own 404/405 rather than one returned by a handler.
func unmatched(err error) bool {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return false
	}
	if fe.Code == fiber.StatusMethodNotAllowed {
		return true
	}
	return fe.Code == fiber.StatusNotFound && strings.HasPrefix(fe.Message, "Cannot ")
}

// MetricsEndpoint exposes the collectors of g in the Prometheus text format.
func MetricsEndpoint(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
