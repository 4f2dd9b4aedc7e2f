// Package v1alpha1 defines the wire types of the capacity planner REST
// API. Domain logic never lives here; handlers map these to and from the
// planner's types.
package v1alpha1

// WorkloadItem is one VM to place, as submitted by the caller.
type WorkloadItem struct {
	Id          string  `json:"id" validate:"required"`
	DisplayName string  `json:"displayName,omitempty"`
	CpuCores    int     `json:"cpuCores" validate:"min=0"`
	MemoryGB    float64 `json:"memoryGB" validate:"min=0"`
	StorageGB   float64 `json:"storageGB" validate:"min=0"`
}

// ClusterCandidate is one destination cluster, as submitted by the caller.
type ClusterCandidate struct {
	Id                    string  `json:"id" validate:"required"`
	DisplayName           string  `json:"displayName,omitempty"`
	NodeCount             int     `json:"nodeCount" validate:"min=1"`
	CpuCoresPerNode       int     `json:"cpuCoresPerNode" validate:"min=0"`
	MemoryGBPerNode       float64 `json:"memoryGBPerNode" validate:"min=0"`
	StorageGBTotal        float64 `json:"storageGBTotal" validate:"min=0"`
	HaPolicy              string  `json:"haPolicy" validate:"ha_policy"`
	CpuOvercommitRatio    float64 `json:"cpuOvercommitRatio" validate:"overcommit_ratio"`
	MemoryOvercommitRatio float64 `json:"memoryOvercommitRatio" validate:"overcommit_ratio"`
}

// CapacityPlanRequest is the body of POST /api/v1/capacity/plan.
type CapacityPlanRequest struct {
	Workload []WorkloadItem     `json:"workload" validate:"dive"`
	Clusters []ClusterCandidate `json:"clusters" validate:"dive"`
}

// PlacementAssignment is one resolved VM-to-cluster mapping.
type PlacementAssignment struct {
	WorkloadItemId string `json:"workloadItemId"`
	ClusterId      string `json:"clusterId"`
	Spillover      bool   `json:"spillover"`
}

// UnplacedItem is a VM that fit on no cluster.
type UnplacedItem struct {
	WorkloadItemId string `json:"workloadItemId"`
	Reason         string `json:"reason"`
}

// InvalidCluster is a candidate excluded before packing because its node
// count cannot satisfy its HA policy.
type InvalidCluster struct {
	ClusterId string `json:"clusterId"`
	Reason    string `json:"reason"`
}

// ClusterUtilization holds post-placement metrics for one cluster.
type ClusterUtilization struct {
	ClusterId             string   `json:"clusterId"`
	CpuUtilizationPct     float64  `json:"cpuUtilizationPct"`
	MemoryUtilizationPct  float64  `json:"memoryUtilizationPct"`
	StorageUtilizationPct float64  `json:"storageUtilizationPct"`
	Bottlenecks           []string `json:"bottlenecks,omitempty"`
}

// CapacityPlanReport is the response of POST /api/v1/capacity/plan.
type CapacityPlanReport struct {
	Assignments         []PlacementAssignment         `json:"assignments"`
	Unplaced            []UnplacedItem                `json:"unplaced"`
	ClusterUtilizations map[string]ClusterUtilization `json:"clusterUtilizations"`
	InvalidClusters     []InvalidCluster              `json:"invalidClusters,omitempty"`
	Sufficient          bool                          `json:"sufficient"`
	RequestId           *string                       `json:"requestId,omitempty"`
}

// Error is the generic error response body.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// Info reports the service version.
type Info struct {
	GitCommit   string `json:"gitCommit"`
	VersionName string `json:"versionName"`
}

// Health reports service liveness.
type Health struct {
	Status string `json:"status"`
}
