package planner

// UnplacedReason explains why a VM fit nowhere.
type UnplacedReason string

const (
	ReasonInsufficientCPU     UnplacedReason = "insufficient_cpu"
	ReasonInsufficientMemory  UnplacedReason = "insufficient_memory"
	ReasonInsufficientStorage UnplacedReason = "insufficient_storage"
	ReasonNoClustersProvided  UnplacedReason = "no_clusters_provided"
)

// Assignment is one resolved VM-to-cluster mapping. Spillover is true when
// the VM did not fit the first cluster tried and was placed on a fallback.
type Assignment struct {
	WorkloadItemID string `json:"workloadItemId"`
	ClusterID      string `json:"clusterId"`
	Spillover      bool   `json:"spillover"`
}

// UnplacedItem is a VM that fit on no cluster.
type UnplacedItem struct {
	WorkloadItemID string         `json:"workloadItemId"`
	Reason         UnplacedReason `json:"reason"`
}

// InvalidCluster is a candidate excluded from packing because its node
// count cannot satisfy its HA policy.
type InvalidCluster struct {
	ClusterID string `json:"clusterId"`
	Reason    string `json:"reason"`
}

// ClusterUtilization holds post-placement metrics for one cluster.
// Bottlenecks lists the resources at Warning or Critical, ordered
// cpu, memory, storage.
type ClusterUtilization struct {
	ClusterID   string     `json:"clusterId"`
	CPUPct      float64    `json:"cpuUtilizationPct"`
	MemoryPct   float64    `json:"memoryUtilizationPct"`
	StoragePct  float64    `json:"storageUtilizationPct"`
	Bottlenecks []Resource `json:"bottlenecks,omitempty"`
}

// Report is the outcome of one planning run. Assignments and Unplaced are
// in processing order. Sufficient is true iff every VM was placed and no
// cluster has a Critical bottleneck; a plan that technically fits but runs
// a cluster into Critical territory is still operationally risky.
type Report struct {
	Assignments     []Assignment                  `json:"assignments"`
	Unplaced        []UnplacedItem                `json:"unplaced"`
	Utilizations    map[string]ClusterUtilization `json:"clusterUtilizations"`
	InvalidClusters []InvalidCluster              `json:"invalidClusters,omitempty"`
	Sufficient      bool                          `json:"sufficient"`
}
