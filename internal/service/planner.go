package service

import (
	"context"
	"errors"

	"github.com/mateim4/archer-capacity-planner/internal/planner"
	"github.com/mateim4/archer-capacity-planner/pkg/log"
	"github.com/mateim4/archer-capacity-planner/pkg/metrics"
)

// PlannerService runs capacity planning requests against the placement
// engine. The engine itself is pure; the service adds operation logging
// and metrics around it.
type PlannerService struct {
	planner *planner.CapacityPlanner
	logger  *log.StructuredLogger
}

func NewPlannerService(p *planner.CapacityPlanner) *PlannerService {
	return &PlannerService{
		planner: p,
		logger:  log.NewDebugLogger("planner_service"),
	}
}

// CreatePlan assigns the workload to the candidate clusters and returns
// the placement report. Malformed input surfaces as ErrInvalidRequest;
// every planning outcome, including unplaced VMs and invalid clusters, is
// data on the report.
func (s *PlannerService) CreatePlan(ctx context.Context, workload []planner.WorkloadItem, clusters []planner.ClusterCandidate) (*planner.Report, error) {
	logger := s.logger.WithContext(ctx)
	tracer := logger.Operation("create_plan").
		WithInt("workload_items", len(workload)).
		WithInt("cluster_candidates", len(clusters)).
		Build()

	report, err := s.planner.Plan(workload, clusters)
	if err != nil {
		metrics.IncreasePlansTotalMetric(metrics.PlanOutcomeInvalidInput)
		tracer.Error(err).Log()

		var invalid *planner.ErrInvalidInput
		if errors.As(err, &invalid) {
			return nil, NewErrInvalidRequest(err.Error())
		}
		return nil, err
	}

	outcome := metrics.PlanOutcomeSufficient
	if !report.Sufficient {
		outcome = metrics.PlanOutcomeInsufficient
	}
	metrics.IncreasePlansTotalMetric(outcome)
	metrics.AddUnplacedVMsMetric(len(report.Unplaced))
	metrics.AddInvalidClustersMetric(len(report.InvalidClusters))

	tracer.Success().
		WithInt("assignments", len(report.Assignments)).
		WithInt("unplaced", len(report.Unplaced)).
		WithInt("invalid_clusters", len(report.InvalidClusters)).
		WithBool("sufficient", report.Sufficient).
		Log()
	return report, nil
}
