package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveSubscriptions is the gauge of live change-feed subscriptions.
	ActiveSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aurafolio_change_subscriptions_active",
		Help: "Number of active change-feed subscriptions",
	})

	// ChangeEventsTotal counts published change events by table and kind.
	ChangeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurafolio_change_events_total",
		Help: "Total change events published by table and kind",
	}, []string{"table", "kind"})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The middleware registers collectors in the default registry, so the
// instance is created once and shared.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}
