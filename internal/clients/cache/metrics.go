package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "finance",
		Subsystem: "cache",
		Name:      "dashboard_lookups_total",
	},
	[]string{"result"},
)

func observeLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	lookupsTotal.WithLabelValues(result).Inc()
}
