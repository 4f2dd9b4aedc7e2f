package planner

import "math"

// CapacityPlanner runs the full pipeline: validate clusters against their
// HA policy, normalize capacity, pack, detect bottlenecks, assemble the
// report. Plan is a pure function of its inputs; a single planner can
// serve concurrent callers without locking.
type CapacityPlanner struct {
	packer   *BinPacker
	detector *BottleneckDetector
}

// CapacityPlannerOption is a functional option for configuring a
// CapacityPlanner.
type CapacityPlannerOption func(*CapacityPlanner)

// WithBinPacker replaces the default packer.
func WithBinPacker(p *BinPacker) CapacityPlannerOption {
	return func(cp *CapacityPlanner) {
		if p != nil {
			cp.packer = p
		}
	}
}

// WithBottleneckDetector replaces the default detector.
func WithBottleneckDetector(d *BottleneckDetector) CapacityPlannerOption {
	return func(cp *CapacityPlanner) {
		if d != nil {
			cp.detector = d
		}
	}
}

// NewCapacityPlanner creates a planner with default packing and bottleneck
// settings.
func NewCapacityPlanner(opts ...CapacityPlannerOption) *CapacityPlanner {
	cp := &CapacityPlanner{
		packer:   NewBinPacker(),
		detector: NewBottleneckDetector(),
	}

	for _, opt := range opts {
		opt(cp)
	}

	return cp
}

// Plan assigns every workload item to a cluster or reports it unplaced.
//
// Clusters whose node count cannot satisfy their HA policy are excluded
// from packing and listed under InvalidClusters; this is a recoverable
// configuration problem, not a failure of the run. Malformed input
// (negative or NaN values, unknown HA policy, overcommit below 1.0)
// returns an ErrInvalidInput with no partial report. Unplaced VMs,
// bottlenecks and an insufficient plan are data on the report, not errors.
func (cp *CapacityPlanner) Plan(workload []WorkloadItem, clusters []ClusterCandidate) (*Report, error) {
	for _, item := range workload {
		if err := validateWorkloadItem(item); err != nil {
			return nil, err
		}
	}
	for _, c := range clusters {
		if err := validateCluster(c); err != nil {
			return nil, err
		}
	}

	valid := make([]ClusterCandidate, 0, len(clusters))
	invalid := make([]InvalidCluster, 0)
	effective := make(map[string]ResourceVector, len(clusters))

	for _, c := range clusters {
		capacity, err := Normalize(c)
		if err != nil {
			invalid = append(invalid, InvalidCluster{ClusterID: c.ID, Reason: err.Error()})
			continue
		}
		valid = append(valid, c)
		effective[c.ID] = capacity
	}

	packed := cp.packer.Pack(workload, valid, effective)
	utilizations, critical := cp.detector.Analyze(effective, packed.Remaining)

	return &Report{
		Assignments:     packed.Assignments,
		Unplaced:        packed.Unplaced,
		Utilizations:    utilizations,
		InvalidClusters: invalid,
		Sufficient:      len(packed.Unplaced) == 0 && !critical,
	}, nil
}

func validateWorkloadItem(item WorkloadItem) error {
	if item.ID == "" {
		return NewErrInvalidInput("workload item has empty id")
	}
	if item.CPUCores < 0 {
		return NewErrInvalidInput("workload item %s: negative cpu demand %d", item.ID, item.CPUCores)
	}
	if item.MemoryGB < 0 || math.IsNaN(item.MemoryGB) {
		return NewErrInvalidInput("workload item %s: invalid memory demand %f", item.ID, item.MemoryGB)
	}
	if item.StorageGB < 0 || math.IsNaN(item.StorageGB) {
		return NewErrInvalidInput("workload item %s: invalid storage demand %f", item.ID, item.StorageGB)
	}
	return nil
}

func validateCluster(c ClusterCandidate) error {
	if c.ID == "" {
		return NewErrInvalidInput("cluster has empty id")
	}
	if c.NodeCount <= 0 {
		return NewErrInvalidInput("cluster %s: node count must be positive, got %d", c.ID, c.NodeCount)
	}
	if c.CPUCoresPerNode < 0 {
		return NewErrInvalidInput("cluster %s: negative cpu capacity %d", c.ID, c.CPUCoresPerNode)
	}
	if c.MemoryGBPerNode < 0 || math.IsNaN(c.MemoryGBPerNode) {
		return NewErrInvalidInput("cluster %s: invalid memory capacity %f", c.ID, c.MemoryGBPerNode)
	}
	if c.StorageGBTotal < 0 || math.IsNaN(c.StorageGBTotal) {
		return NewErrInvalidInput("cluster %s: invalid storage capacity %f", c.ID, c.StorageGBTotal)
	}
	if !c.HAPolicy.Valid() {
		return NewErrInvalidInput("cluster %s: unknown HA policy %q", c.ID, string(c.HAPolicy))
	}
	if c.CPUOvercommitRatio < 1.0 || math.IsNaN(c.CPUOvercommitRatio) {
		return NewErrInvalidInput("cluster %s: cpu overcommit ratio must be >= 1.0, got %f", c.ID, c.CPUOvercommitRatio)
	}
	if c.MemoryOvercommitRatio < 1.0 || math.IsNaN(c.MemoryOvercommitRatio) {
		return NewErrInvalidInput("cluster %s: memory overcommit ratio must be >= 1.0, got %f", c.ID, c.MemoryOvercommitRatio)
	}
	return nil
}
