package mappers

import (
	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/internal/planner"
)

// ReportToAPI converts the planner's report to the API response shape.
func ReportToAPI(report planner.Report, requestID *string) api.CapacityPlanReport {
	assignments := make([]api.PlacementAssignment, len(report.Assignments))
	for i, a := range report.Assignments {
		assignments[i] = api.PlacementAssignment{
			WorkloadItemId: a.WorkloadItemID,
			ClusterId:      a.ClusterID,
			Spillover:      a.Spillover,
		}
	}

	unplaced := make([]api.UnplacedItem, len(report.Unplaced))
	for i, u := range report.Unplaced {
		unplaced[i] = api.UnplacedItem{
			WorkloadItemId: u.WorkloadItemID,
			Reason:         string(u.Reason),
		}
	}

	utilizations := make(map[string]api.ClusterUtilization, len(report.Utilizations))
	for id, u := range report.Utilizations {
		bottlenecks := make([]string, len(u.Bottlenecks))
		for i, b := range u.Bottlenecks {
			bottlenecks[i] = string(b)
		}
		utilizations[id] = api.ClusterUtilization{
			ClusterId:             u.ClusterID,
			CpuUtilizationPct:     u.CPUPct,
			MemoryUtilizationPct:  u.MemoryPct,
			StorageUtilizationPct: u.StoragePct,
			Bottlenecks:           bottlenecks,
		}
	}

	invalid := make([]api.InvalidCluster, len(report.InvalidClusters))
	for i, c := range report.InvalidClusters {
		invalid[i] = api.InvalidCluster{
			ClusterId: c.ClusterID,
			Reason:    c.Reason,
		}
	}

	return api.CapacityPlanReport{
		Assignments:         assignments,
		Unplaced:            unplaced,
		ClusterUtilizations: utilizations,
		InvalidClusters:     invalid,
		Sufficient:          report.Sufficient,
		RequestId:           requestID,
	}
}
