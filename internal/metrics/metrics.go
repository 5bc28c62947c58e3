package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
)

const namespace = "discovery_service"

var (
	catalogChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_changes_total",
			Help:      "Applied catalog mutations by kind",
		},
		[]string{"kind"},
	)

	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Login and register attempts",
		},
		[]string{"op", "status"}, // op: login, register, logout
	)

	catalogEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_events",
			Help:      "Events currently in the catalog",
		},
	)
)

type changeSource interface {
	Subscribe(fn func(catalog.Change)) (cancel func())
	Len() int
}

// ObserveCatalog counts every change applied to s and keeps the size gauge
// current. The returned func stops observing.
func ObserveCatalog(s changeSource) (cancel func()) {
	catalogEvents.Set(float64(s.Len()))
	return s.Subscribe(func(c catalog.Change) {
		catalogChangesTotal.WithLabelValues(string(c.Kind)).Inc()
		if c.Kind == catalog.ChangeCreated || c.Kind == catalog.ChangeDeleted {
			catalogEvents.Set(float64(s.Len()))
		}
	})
}

func RecordAuthAttempt(op, status string) {
	authAttemptsTotal.WithLabelValues(op, status).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
