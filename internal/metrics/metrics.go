package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingestion metrics
	ReadingsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalcare_readings_recorded_total",
			Help: "Total number of vital-sign readings recorded",
		},
		[]string{"vital_type", "outcome"}, // outcome: normal, abnormal
	)

	// Alert metrics
	AlertsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalcare_alerts_created_total",
			Help: "Total number of alerts created",
		},
		[]string{"severity"},
	)

	AlertSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vitalcare_alert_save_failures_total",
			Help: "Alert writes swallowed so the vital reading could still be recorded",
		},
	)

	AlertTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalcare_alert_transitions_total",
			Help: "Total number of alert lifecycle transitions applied",
		},
		[]string{"target_status"},
	)
)
