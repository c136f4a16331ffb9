package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered  prometheus.Counter
	ProfilesCreated  prometheus.Counter
	ProfilesDeleted  prometheus.Counter
	ProfilesVerified prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentmap_users_registered_total",
			Help: "Total number of users registered",
		}),
		ProfilesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentmap_profiles_created_total",
			Help: "Total number of talent profiles created",
		}),
		ProfilesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentmap_profiles_deleted_total",
			Help: "Total number of talent profiles deleted",
		}),
		ProfilesVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentmap_profiles_verified_total",
			Help: "Total number of verification flag changes applied by admins",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "talentmap_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveRequestDuration records one request latency sample.
func (m *Metrics) ObserveRequestDuration(method, path string, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
