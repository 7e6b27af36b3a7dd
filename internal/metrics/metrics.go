package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TasksSaved       prometheus.Counter
	TasksDeleted     *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPSeconds      *prometheus.HistogramVec
	GeocodeSeconds   *prometheus.HistogramVec
	GeocodeErrors    *prometheus.CounterVec
	GeocodeNoResults prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		TasksSaved: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "geotasks_tasks_saved_total",
			Help: "Total number of tasks saved.",
		}),
		TasksDeleted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geotasks_tasks_deleted_total",
			Help: "Total number of delete requests, by whether a task existed.",
		}, []string{"found"}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geotasks_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"route", "method", "status"}),
		HTTPSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geotasks_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		GeocodeSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geotasks_geocoding_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		GeocodeErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geotasks_geocoding_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}, []string{"provider"}),
		GeocodeNoResults: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "geotasks_geocoding_empty_results_total",
			Help: "Total number of location searches without a match.",
		}),
	}
}
