package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Inbox-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Messages ingested counter
	MessagesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "messages_ingested_total",
			Help:      "Total messages ingested from channel webhooks",
		},
		[]string{"channel", "direction"},
	)

	// Messages marked seen counter
	MessagesSeenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "messages_seen_total",
			Help:      "Total messages marked as seen",
		},
	)

	// Ticket status transition counter
	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "ticket_status_transitions_total",
			Help:      "Total ticket status transitions",
		},
		[]string{"from", "to"},
	)

	// Queue depth gauge
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "queue_depth",
			Help:      "Ticket event queue depth",
		},
	)

	// Webhook deliveries counter
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "propdesk",
			Subsystem: "inbox_api",
			Name:      "webhook_deliveries_total",
			Help:      "Total ticket event webhook deliveries",
		},
		[]string{"event_type", "status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordMessageIngested records one accepted webhook message
func RecordMessageIngested(channel, direction string) {
	MessagesIngestedTotal.WithLabelValues(channel, direction).Inc()
}

// RecordMessagesSeen adds to the seen counter
func RecordMessagesSeen(count int) {
	MessagesSeenTotal.Add(float64(count))
}

// RecordStatusTransition records a ticket status transition
func RecordStatusTransition(from, to string) {
	StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

// SetQueueDepth sets the current queue depth
func SetQueueDepth(depth int) {
	QueueDepth.Set(float64(depth))
}

// RecordWebhookDelivery records a webhook delivery attempt outcome
func RecordWebhookDelivery(eventType, status string) {
	WebhookDeliveriesTotal.WithLabelValues(eventType, status).Inc()
}
