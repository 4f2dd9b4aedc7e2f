package planner

// HAPolicy is the high-availability reservation policy of a cluster.
// It determines how many nodes are held back for failover.
type HAPolicy string

const (
	// HAPolicyN0 reserves no nodes.
	HAPolicyN0 HAPolicy = "N+0"
	// HAPolicyN1 reserves one node for failover.
	HAPolicyN1 HAPolicy = "N+1"
	// HAPolicyN2 reserves two nodes for failover.
	HAPolicyN2 HAPolicy = "N+2"
)

// Valid reports whether p is one of the known policies.
func (p HAPolicy) Valid() bool {
	switch p {
	case HAPolicyN0, HAPolicyN1, HAPolicyN2:
		return true
	}
	return false
}

// ReservedNodes returns the number of nodes held back by this policy.
// Unknown policies reserve nothing; they are rejected during cluster
// validation before this is ever consulted.
func (p HAPolicy) ReservedNodes() int {
	switch p {
	case HAPolicyN1:
		return 1
	case HAPolicyN2:
		return 2
	default:
		return 0
	}
}

// WorkloadItem is one VM to be placed. Demand values arrive already
// normalized from the caller's inventory source; the engine never parses
// raw exports. Items are never mutated during a planning run.
type WorkloadItem struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName,omitempty"`
	CPUCores    int     `json:"cpuCores"`
	MemoryGB    float64 `json:"memoryGB"`
	StorageGB   float64 `json:"storageGB"`
}

// ClusterCandidate is one destination cluster. The planner never mutates
// a candidate; remaining capacity is tracked in a separate working vector.
type ClusterCandidate struct {
	ID                    string   `json:"id"`
	DisplayName           string   `json:"displayName,omitempty"`
	NodeCount             int      `json:"nodeCount"`
	CPUCoresPerNode       int      `json:"cpuCoresPerNode"`
	MemoryGBPerNode       float64  `json:"memoryGBPerNode"`
	StorageGBTotal        float64  `json:"storageGBTotal"`
	HAPolicy              HAPolicy `json:"haPolicy"`
	CPUOvercommitRatio    float64  `json:"cpuOvercommitRatio"`
	MemoryOvercommitRatio float64  `json:"memoryOvercommitRatio"`
}

// RawCPUCores returns the physical core count across all nodes.
func (c ClusterCandidate) RawCPUCores() int {
	return c.NodeCount * c.CPUCoresPerNode
}

// RawMemoryGB returns the physical memory across all nodes.
func (c ClusterCandidate) RawMemoryGB() float64 {
	return float64(c.NodeCount) * c.MemoryGBPerNode
}

// Resource names a capacity dimension on a cluster.
type Resource string

const (
	ResourceCPU     Resource = "cpu"
	ResourceMemory  Resource = "memory"
	ResourceStorage Resource = "storage"
)

// ResourceVector is a (cpu, memory, storage) tuple. It serves both as a
// demand vector for one VM and as the mutable remaining-capacity state of
// one cluster during packing.
type ResourceVector struct {
	CPUCores  float64 `json:"cpuCores"`
	MemoryGB  float64 `json:"memoryGB"`
	StorageGB float64 `json:"storageGB"`
}

// Fits reports whether demand fits within v in all three dimensions.
func (v ResourceVector) Fits(demand ResourceVector) bool {
	return demand.CPUCores <= v.CPUCores &&
		demand.MemoryGB <= v.MemoryGB &&
		demand.StorageGB <= v.StorageGB
}

// Sub returns v minus demand, dimension-wise.
func (v ResourceVector) Sub(demand ResourceVector) ResourceVector {
	return ResourceVector{
		CPUCores:  v.CPUCores - demand.CPUCores,
		MemoryGB:  v.MemoryGB - demand.MemoryGB,
		StorageGB: v.StorageGB - demand.StorageGB,
	}
}

// Total returns the sum of all three dimensions, used to order clusters
// by headroom.
func (v ResourceVector) Total() float64 {
	return v.CPUCores + v.MemoryGB + v.StorageGB
}

// Demand returns the item's demand as a vector.
func (w WorkloadItem) Demand() ResourceVector {
	return ResourceVector{
		CPUCores:  float64(w.CPUCores),
		MemoryGB:  w.MemoryGB,
		StorageGB: w.StorageGB,
	}
}
