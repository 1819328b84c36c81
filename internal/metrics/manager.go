package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests          *prometheus.CounterVec
	CounterRequestPanics     prometheus.Counter
	CounterCyclesCreated     prometheus.Counter
	CounterCycleOverlaps     prometheus.Counter
	CounterSessionsGenerated prometheus.Counter
	CounterSessionsLogged    prometheus.Counter
	CounterScheduleCache     *prometheus.CounterVec
	CounterPhotoUploads      prometheus.Counter
	CounterExports           prometheus.Counter

	// histograms
	HistRequestDuration *prometheus.HistogramVec
	HistExportDuration  prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("workout_tracker", "test", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "The total number of handled requests",
		}, []string{"method", "route", "status"}),
		CounterRequestPanics:     counter("request_panics_total", "The total number of recovered handler panics"),
		CounterCyclesCreated:     counter("cycles_created_total", "The total number of created program cycles"),
		CounterCycleOverlaps:     counter("cycle_overlaps_total", "The total number of cycle creations rejected for overlap"),
		CounterSessionsGenerated: counter("sessions_generated_total", "The total number of generated scheduled sessions"),
		CounterSessionsLogged:    counter("sessions_logged_total", "The total number of logged workout sessions"),
		CounterScheduleCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "schedule_cache_lookups_total",
			Help:      "Schedule cache lookups by result",
		}, []string{"result"}),
		CounterPhotoUploads: counter("photo_uploads_total", "The total number of uploaded progress photos"),
		CounterExports:      counter("exports_total", "The total number of created backup archives"),
		HistRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		HistExportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "export_duration_seconds",
			Help:      "Duration of a single backup export in seconds",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
	}
}
