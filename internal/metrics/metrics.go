// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outreach_emails_sent_total",
		Help: "Outreach emails delivered to the provider.",
	})
	EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outreach_emails_failed_total",
		Help: "Outreach emails the provider rejected.",
	})
	EmailsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outreach_emails_opened_total",
		Help: "First opens recorded through the tracking pixel.",
	})
	RateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rate_limited_requests_total",
		Help: "Requests rejected by the fixed-window rate limiter.",
	})
)

// Handler exposes the prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
