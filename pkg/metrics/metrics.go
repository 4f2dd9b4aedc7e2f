package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	capacityPlanner = "capacity_planner"

	plansTotal           = "plans_total"
	unplacedVMsTotal     = "unplaced_vms_total"
	invalidClustersTotal = "invalid_clusters_total"

	planOutcomeLabel = "outcome"
)

const (
	// PlanOutcomeSufficient labels runs where everything fit with no
	// critical bottleneck.
	PlanOutcomeSufficient = "sufficient"
	// PlanOutcomeInsufficient labels runs with unplaced VMs or a critical
	// bottleneck.
	PlanOutcomeInsufficient = "insufficient"
	// PlanOutcomeInvalidInput labels runs rejected for malformed input.
	PlanOutcomeInvalidInput = "invalid_input"
)

var plansTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: capacityPlanner,
		Name:      plansTotal,
		Help:      "number of capacity planning runs by outcome",
	},
	[]string{planOutcomeLabel},
)

var unplacedVMsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: capacityPlanner,
		Name:      unplacedVMsTotal,
		Help:      "number of VMs that could not be placed across all planning runs",
	},
)

var invalidClustersTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: capacityPlanner,
		Name:      invalidClustersTotal,
		Help:      "number of clusters rejected for HA policy misconfiguration",
	},
)

// IncreasePlansTotalMetric counts one planning run with its outcome.
func IncreasePlansTotalMetric(outcome string) {
	plansTotalMetric.With(prometheus.Labels{planOutcomeLabel: outcome}).Inc()
}

// AddUnplacedVMsMetric counts VMs left unplaced by one run.
func AddUnplacedVMsMetric(count int) {
	if count > 0 {
		unplacedVMsTotalMetric.Add(float64(count))
	}
}

// AddInvalidClustersMetric counts clusters excluded by one run.
func AddInvalidClustersMetric(count int) {
	if count > 0 {
		invalidClustersTotalMetric.Add(float64(count))
	}
}

func init() {
	prometheus.MustRegister(
		plansTotalMetric,
		unplacedVMsTotalMetric,
		invalidClustersTotalMetric,
	)
}

// Handler exposes the default prometheus registry over HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}
