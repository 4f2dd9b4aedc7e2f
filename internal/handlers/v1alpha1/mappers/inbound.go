// Package mappers converts between the API wire types and the planner's
// domain types.
package mappers

import (
	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/internal/planner"
)

// WorkloadFromAPI converts the submitted workload list to domain items.
func WorkloadFromAPI(items []api.WorkloadItem) []planner.WorkloadItem {
	workload := make([]planner.WorkloadItem, len(items))
	for i, item := range items {
		workload[i] = planner.WorkloadItem{
			ID:          item.Id,
			DisplayName: item.DisplayName,
			CPUCores:    item.CpuCores,
			MemoryGB:    item.MemoryGB,
			StorageGB:   item.StorageGB,
		}
	}
	return workload
}

// ClustersFromAPI converts the submitted cluster list to domain
// candidates.
func ClustersFromAPI(clusters []api.ClusterCandidate) []planner.ClusterCandidate {
	candidates := make([]planner.ClusterCandidate, len(clusters))
	for i, c := range clusters {
		candidates[i] = planner.ClusterCandidate{
			ID:                    c.Id,
			DisplayName:           c.DisplayName,
			NodeCount:             c.NodeCount,
			CPUCoresPerNode:       c.CpuCoresPerNode,
			MemoryGBPerNode:       c.MemoryGBPerNode,
			StorageGBTotal:        c.StorageGBTotal,
			HAPolicy:              planner.HAPolicy(c.HaPolicy),
			CPUOvercommitRatio:    c.CpuOvercommitRatio,
			MemoryOvercommitRatio: c.MemoryOvercommitRatio,
		}
	}
	return candidates
}
