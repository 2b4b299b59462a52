package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnesscenter_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitnesscenter_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnesscenter_appointments_total",
			Help: "Total number of appointment booking attempts",
		},
		[]string{"status"},
	)

	AppointmentApprovalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnesscenter_appointment_approvals_total",
			Help: "Total number of approval state transitions",
		},
		[]string{"action"},
	)

	AppointmentCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitnesscenter_appointment_cancellations_total",
			Help: "Total number of appointment cancellations",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnesscenter_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitnesscenter_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnesscenter_ai_requests_total",
			Help: "Total number of AI proxy requests",
		},
		[]string{"kind", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAppointment(status string) {
	AppointmentsTotal.WithLabelValues(status).Inc()
}

func RecordApproval(action string) {
	AppointmentApprovalsTotal.WithLabelValues(action).Inc()
}

func RecordCancellation() {
	AppointmentCancellationsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordAIRequest(kind, status string) {
	AIRequestsTotal.WithLabelValues(kind, status).Inc()
}
