package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solarcalc_calculations_total",
		Help: "Completed calculations by endpoint.",
	}, []string{"endpoint"})

	calculationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solarcalc_calculation_errors_total",
		Help: "Failed calculation requests by endpoint and kind.",
	}, []string{"endpoint", "kind"})
)
