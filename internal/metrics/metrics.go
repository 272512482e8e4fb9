// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "letsheal"

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	QuizAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_attempts_total",
			Help:      "Quiz attempt transitions (started, completed)",
		},
		[]string{"event"},
	)

	QuizAnswers = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_answers_submitted_total",
			Help:      "Answers recorded, including replacements",
		},
	)

	Appointments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_total",
			Help:      "Appointment operations by event (booked, cancelled, rejected)",
		},
		[]string{"event", "reason"},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by outcome",
		},
		[]string{"outcome"},
	)
)

// Label values shared by callers.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	EventStarted   = "started"
	EventCompleted = "completed"
	EventBooked    = "booked"
	EventCancelled = "cancelled"
	EventRejected  = "rejected"
)
