package astrokit

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	propagations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "astrokit_propagations_total",
			Help: "Total number of orbital state propagations.",
		},
	)

	sectorAssignments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "astrokit_sector_assignments_total",
			Help: "Total number of point-to-sector assignments.",
		},
	)

	keplerIterationCap = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "astrokit_kepler_iteration_cap_total",
			Help: "Kepler solves that hit the iteration cap before converging.",
		},
	)
)

func init() {
	prometheus.MustRegister(propagations)
	prometheus.MustRegister(sectorAssignments)
	prometheus.MustRegister(keplerIterationCap)
}
