package planner

import "sort"

const (
	// DefaultMemoryWeight is the weight of one GB of memory relative to one
	// CPU core in the demand ordering. The exact value is an operational
	// tuning knob, not a hard truth; override it with WithMemoryWeight.
	DefaultMemoryWeight = 0.5
)

// BinPacker assigns workload items to clusters using first-fit-decreasing:
// items are processed largest-demand-first, clusters are tried in order of
// descending effective capacity, and each item lands on the first cluster
// with room in all three dimensions. Ties break by id ascending so a run
// is fully reproducible.
type BinPacker struct {
	memoryWeight float64
}

// BinPackerOption is a functional option for configuring a BinPacker.
type BinPackerOption func(*BinPacker)

// WithMemoryWeight sets the memory weight used in the demand ordering.
// The value must be positive; non-positive values are ignored and the
// default is kept.
func WithMemoryWeight(weight float64) BinPackerOption {
	return func(p *BinPacker) {
		if weight > 0 {
			p.memoryWeight = weight
		}
	}
}

// NewBinPacker creates a BinPacker with default settings. Optional
// BinPackerOption values can be supplied to override the defaults.
func NewBinPacker(opts ...BinPackerOption) *BinPacker {
	p := &BinPacker{
		memoryWeight: DefaultMemoryWeight,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PackResult is the output of one packing run. Remaining holds each
// cluster's capacity left after all placements, keyed by cluster id.
type PackResult struct {
	Assignments []Assignment
	Unplaced    []UnplacedItem
	Remaining   map[string]ResourceVector
}

// demandWeight orders items for packing. CPU-heavy and memory-heavy VMs
// go first; storage does not participate because it dominates the other
// dimensions numerically and is rarely the binding constraint.
func (p *BinPacker) demandWeight(item WorkloadItem) float64 {
	return float64(item.CPUCores) + item.MemoryGB*p.memoryWeight
}

// Pack places each workload item on exactly one cluster or reports it
// unplaced. effective maps cluster id to the cluster's normalized capacity;
// it is not mutated. Runs in O(n*m) for n items and m clusters.
func (p *BinPacker) Pack(workload []WorkloadItem, clusters []ClusterCandidate, effective map[string]ResourceVector) PackResult {
	result := PackResult{
		Assignments: make([]Assignment, 0, len(workload)),
		Unplaced:    make([]UnplacedItem, 0),
		Remaining:   make(map[string]ResourceVector, len(clusters)),
	}

	if len(clusters) == 0 {
		for _, item := range sortedByDemand(workload, p.demandWeight) {
			result.Unplaced = append(result.Unplaced, UnplacedItem{
				WorkloadItemID: item.ID,
				Reason:         ReasonNoClustersProvided,
			})
		}
		return result
	}

	ordered := sortedByCapacity(clusters, effective)
	remaining := make([]ResourceVector, len(ordered))
	for i, c := range ordered {
		remaining[i] = effective[c.ID]
	}

	for _, item := range sortedByDemand(workload, p.demandWeight) {
		demand := item.Demand()

		placed := false
		for i := range ordered {
			if !remaining[i].Fits(demand) {
				continue
			}
			remaining[i] = remaining[i].Sub(demand)
			result.Assignments = append(result.Assignments, Assignment{
				WorkloadItemID: item.ID,
				ClusterID:      ordered[i].ID,
				Spillover:      i > 0,
			})
			placed = true
			break
		}

		if !placed {
			result.Unplaced = append(result.Unplaced, UnplacedItem{
				WorkloadItemID: item.ID,
				Reason:         unplacedReason(demand, remaining),
			})
		}
	}

	for i, c := range ordered {
		result.Remaining[c.ID] = remaining[i]
	}
	return result
}

// unplacedReason picks the cluster with the least total shortfall against
// the demand and blames the first dimension that failed there, checked in
// order CPU, memory, storage.
func unplacedReason(demand ResourceVector, remaining []ResourceVector) UnplacedReason {
	best := 0
	bestShortfall := shortfall(demand, remaining[0])
	for i := 1; i < len(remaining); i++ {
		if s := shortfall(demand, remaining[i]); s < bestShortfall {
			best, bestShortfall = i, s
		}
	}

	r := remaining[best]
	switch {
	case demand.CPUCores > r.CPUCores:
		return ReasonInsufficientCPU
	case demand.MemoryGB > r.MemoryGB:
		return ReasonInsufficientMemory
	default:
		return ReasonInsufficientStorage
	}
}

func shortfall(demand, remaining ResourceVector) float64 {
	total := 0.0
	if d := demand.CPUCores - remaining.CPUCores; d > 0 {
		total += d
	}
	if d := demand.MemoryGB - remaining.MemoryGB; d > 0 {
		total += d
	}
	if d := demand.StorageGB - remaining.StorageGB; d > 0 {
		total += d
	}
	return total
}

// sortedByDemand returns a copy of workload ordered largest-weight-first,
// ties broken by id ascending.
func sortedByDemand(workload []WorkloadItem, weight func(WorkloadItem) float64) []WorkloadItem {
	items := make([]WorkloadItem, len(workload))
	copy(items, workload)
	sort.SliceStable(items, func(i, j int) bool {
		wi, wj := weight(items[i]), weight(items[j])
		if wi != wj {
			return wi > wj
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// sortedByCapacity returns a copy of clusters ordered by descending total
// effective capacity, ties broken by id ascending. Candidates with more
// headroom are tried first for every item.
func sortedByCapacity(clusters []ClusterCandidate, effective map[string]ResourceVector) []ClusterCandidate {
	ordered := make([]ClusterCandidate, len(clusters))
	copy(ordered, clusters)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti, tj := effective[ordered[i].ID].Total(), effective[ordered[j].ID].Total()
		if ti != tj {
			return ti > tj
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}
