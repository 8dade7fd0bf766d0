// Package metrics provides Prometheus instrumentation for the payments API.
//
// Standard Go runtime and process metrics are exposed automatically by
// prometheus/client_golang; the counters below cover the billing domain.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BillingEvents counts billing lifecycle events (customer_created,
// payment_method_attached, intent_confirmed, subscription_created,
// subscription_resumed, subscription_canceled).
var BillingEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wavefinder_billing_events_total",
	Help: "Billing lifecycle events by type.",
}, []string{"event"})

// GatewayErrors counts failed payment gateway round-trips by operation.
var GatewayErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wavefinder_gateway_errors_total",
	Help: "Payment gateway call failures by operation.",
}, []string{"operation"})

// Handler returns the Prometheus scrape endpoint handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
