package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestDuration tracks request latency per route and status.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "attendance_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	// AttendanceMarksTotal counts attendance upserts per status.
	AttendanceMarksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_marks_total",
			Help: "Attendance marks recorded",
		},
		[]string{"status"},
	)
)
