package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/appointments", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/appointments", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordAppointment(t *testing.T) {
	AppointmentsTotal.Reset()

	RecordAppointment("created")
	RecordAppointment("created")
	RecordAppointment("rejected")

	created := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("created"))
	rejected := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("rejected"))

	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordApproval(t *testing.T) {
	AppointmentApprovalsTotal.Reset()

	RecordApproval("approve")
	RecordApproval("unapprove")

	assert.Equal(t, float64(1), testutil.ToFloat64(AppointmentApprovalsTotal.WithLabelValues("approve")))
	assert.Equal(t, float64(1), testutil.ToFloat64(AppointmentApprovalsTotal.WithLabelValues("unapprove")))
}

func TestRecordAIRequest(t *testing.T) {
	AIRequestsTotal.Reset()

	RecordAIRequest("workout_analysis", "ok")
	RecordAIRequest("nutrition_advice", "error")

	assert.Equal(t, float64(1), testutil.ToFloat64(AIRequestsTotal.WithLabelValues("workout_analysis", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(AIRequestsTotal.WithLabelValues("nutrition_advice", "error")))
}
