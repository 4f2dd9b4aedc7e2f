package planner

import (
	"reflect"
	"testing"
)

func vm(id string, cpu int, mem, storage float64) WorkloadItem {
	return WorkloadItem{ID: id, CPUCores: cpu, MemoryGB: mem, StorageGB: storage}
}

func TestPack_NoClusters(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	result := packer.Pack([]WorkloadItem{vm("a", 2, 4, 10), vm("b", 1, 2, 5)}, nil, nil)

	if len(result.Assignments) != 0 {
		t.Errorf("expected no assignments, got %d", len(result.Assignments))
	}
	if len(result.Unplaced) != 2 {
		t.Fatalf("expected 2 unplaced items, got %d", len(result.Unplaced))
	}
	for _, u := range result.Unplaced {
		if u.Reason != ReasonNoClustersProvided {
			t.Errorf("expected reason %s for %s, got %s", ReasonNoClustersProvided, u.WorkloadItemID, u.Reason)
		}
	}
}

func TestPack_LargestDemandFirst(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	clusters := []ClusterCandidate{{ID: "c1"}}
	effective := map[string]ResourceVector{
		"c1": {CPUCores: 100, MemoryGB: 100, StorageGB: 100},
	}
	// small has a lower demand weight than big, so big must be processed first.
	workload := []WorkloadItem{
		vm("small", 1, 2, 1),
		vm("big", 8, 16, 1),
	}

	result := packer.Pack(workload, clusters, effective)
	if len(result.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(result.Assignments))
	}
	if result.Assignments[0].WorkloadItemID != "big" {
		t.Errorf("expected big first, got %s", result.Assignments[0].WorkloadItemID)
	}
}

func TestPack_TieBrokenByID(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	clusters := []ClusterCandidate{{ID: "c1"}}
	effective := map[string]ResourceVector{
		"c1": {CPUCores: 100, MemoryGB: 100, StorageGB: 100},
	}
	workload := []WorkloadItem{
		vm("zeta", 4, 8, 10),
		vm("alpha", 4, 8, 10),
	}

	result := packer.Pack(workload, clusters, effective)
	if result.Assignments[0].WorkloadItemID != "alpha" {
		t.Errorf("expected alpha first on equal weight, got %s", result.Assignments[0].WorkloadItemID)
	}
}

func TestPack_Spillover(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	// c1 sorts first (more total capacity) but cannot hold big's cpu demand.
	clusters := []ClusterCandidate{{ID: "c1"}, {ID: "c2"}}
	effective := map[string]ResourceVector{
		"c1": {CPUCores: 4, MemoryGB: 100, StorageGB: 100},
		"c2": {CPUCores: 16, MemoryGB: 32, StorageGB: 50},
	}
	workload := []WorkloadItem{
		vm("big", 8, 16, 20),
		vm("small", 2, 4, 10),
	}

	result := packer.Pack(workload, clusters, effective)
	if len(result.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d: %+v", len(result.Assignments), result.Unplaced)
	}

	byID := make(map[string]Assignment)
	for _, a := range result.Assignments {
		byID[a.WorkloadItemID] = a
	}

	if byID["big"].ClusterID != "c2" || !byID["big"].Spillover {
		t.Errorf("expected big to spill to c2, got %+v", byID["big"])
	}
	if byID["small"].ClusterID != "c1" || byID["small"].Spillover {
		t.Errorf("expected small on c1 without spillover, got %+v", byID["small"])
	}
}

func TestPack_ZeroDemandAlwaysFits(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	clusters := []ClusterCandidate{{ID: "full"}}
	effective := map[string]ResourceVector{
		"full": {},
	}

	result := packer.Pack([]WorkloadItem{vm("empty", 0, 0, 0)}, clusters, effective)
	if len(result.Assignments) != 1 {
		t.Fatalf("expected zero-demand VM to be placed, got unplaced %+v", result.Unplaced)
	}
	if result.Assignments[0].ClusterID != "full" {
		t.Errorf("expected placement on first cluster, got %s", result.Assignments[0].ClusterID)
	}
}

func TestPack_ZeroCapacityDimensionRejectsPositiveDemand(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	clusters := []ClusterCandidate{{ID: "no-storage"}}
	effective := map[string]ResourceVector{
		"no-storage": {CPUCores: 100, MemoryGB: 100, StorageGB: 0},
	}

	result := packer.Pack([]WorkloadItem{vm("needs-disk", 1, 1, 10)}, clusters, effective)
	if len(result.Unplaced) != 1 {
		t.Fatalf("expected VM to be unplaced, got assignments %+v", result.Assignments)
	}
	if result.Unplaced[0].Reason != ReasonInsufficientStorage {
		t.Errorf("expected reason %s, got %s", ReasonInsufficientStorage, result.Unplaced[0].Reason)
	}
}

func TestPack_UnplacedReasonFirstFailingDimension(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		remaining ResourceVector
		demand    WorkloadItem
		want      UnplacedReason
	}{
		{
			name:      "cpu checked first",
			remaining: ResourceVector{CPUCores: 1, MemoryGB: 1, StorageGB: 1},
			demand:    vm("x", 4, 8, 10),
			want:      ReasonInsufficientCPU,
		},
		{
			name:      "memory when cpu fits",
			remaining: ResourceVector{CPUCores: 8, MemoryGB: 1, StorageGB: 1},
			demand:    vm("x", 4, 8, 10),
			want:      ReasonInsufficientMemory,
		},
		{
			name:      "storage when cpu and memory fit",
			remaining: ResourceVector{CPUCores: 8, MemoryGB: 16, StorageGB: 1},
			demand:    vm("x", 4, 8, 10),
			want:      ReasonInsufficientStorage,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			packer := NewBinPacker()
			clusters := []ClusterCandidate{{ID: "c1"}}
			effective := map[string]ResourceVector{"c1": tc.remaining}

			result := packer.Pack([]WorkloadItem{tc.demand}, clusters, effective)
			if len(result.Unplaced) != 1 {
				t.Fatalf("expected 1 unplaced item, got %d", len(result.Unplaced))
			}
			if result.Unplaced[0].Reason != tc.want {
				t.Errorf("expected reason %s, got %s", tc.want, result.Unplaced[0].Reason)
			}
		})
	}
}

func TestPack_UnplacedReasonUsesLeastShortfallCluster(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	// far misses by a lot on every dimension; near misses only on memory.
	clusters := []ClusterCandidate{{ID: "far"}, {ID: "near"}}
	effective := map[string]ResourceVector{
		"far":  {CPUCores: 1, MemoryGB: 1, StorageGB: 1},
		"near": {CPUCores: 8, MemoryGB: 4, StorageGB: 100},
	}

	result := packer.Pack([]WorkloadItem{vm("x", 4, 8, 10)}, clusters, effective)
	if len(result.Unplaced) != 1 {
		t.Fatalf("expected 1 unplaced item, got %d", len(result.Unplaced))
	}
	if result.Unplaced[0].Reason != ReasonInsufficientMemory {
		t.Errorf("expected reason from least-shortfall cluster %s, got %s", ReasonInsufficientMemory, result.Unplaced[0].Reason)
	}
}

func TestPack_RemainingCapacityDecremented(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	clusters := []ClusterCandidate{{ID: "c1"}}
	effective := map[string]ResourceVector{
		"c1": {CPUCores: 10, MemoryGB: 20, StorageGB: 30},
	}

	result := packer.Pack([]WorkloadItem{vm("a", 4, 8, 12)}, clusters, effective)
	want := ResourceVector{CPUCores: 6, MemoryGB: 12, StorageGB: 18}
	if result.Remaining["c1"] != want {
		t.Errorf("expected remaining %+v, got %+v", want, result.Remaining["c1"])
	}
	// The input map must not be mutated.
	if effective["c1"].CPUCores != 10 {
		t.Error("effective capacity input was mutated")
	}
}

func TestPack_Deterministic(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker()

	clusters := []ClusterCandidate{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	effective := map[string]ResourceVector{
		"a": {CPUCores: 16, MemoryGB: 64, StorageGB: 200},
		"b": {CPUCores: 16, MemoryGB: 64, StorageGB: 200},
		"c": {CPUCores: 8, MemoryGB: 32, StorageGB: 100},
	}
	workload := []WorkloadItem{
		vm("v1", 4, 16, 50), vm("v2", 4, 16, 50), vm("v3", 8, 32, 100),
		vm("v4", 2, 8, 25), vm("v5", 2, 8, 25),
	}

	first := packer.Pack(workload, clusters, effective)
	for i := 0; i < 10; i++ {
		again := packer.Pack(workload, clusters, effective)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("packing is not deterministic: run %d differs", i)
		}
	}
}

func TestWithMemoryWeight(t *testing.T) {
	t.Parallel()
	packer := NewBinPacker(WithMemoryWeight(2.0))

	// With weight 2.0 the memory-heavy VM outranks the cpu-heavy one.
	cpuHeavy := vm("cpu-heavy", 8, 2, 1)
	memHeavy := vm("mem-heavy", 2, 6, 1)

	clusters := []ClusterCandidate{{ID: "c1"}}
	effective := map[string]ResourceVector{
		"c1": {CPUCores: 100, MemoryGB: 100, StorageGB: 100},
	}

	result := packer.Pack([]WorkloadItem{cpuHeavy, memHeavy}, clusters, effective)
	if result.Assignments[0].WorkloadItemID != "mem-heavy" {
		t.Errorf("expected mem-heavy first with weight 2.0, got %s", result.Assignments[0].WorkloadItemID)
	}

	// Non-positive weights keep the default.
	fallback := NewBinPacker(WithMemoryWeight(-1))
	if fallback.memoryWeight != DefaultMemoryWeight {
		t.Errorf("expected default weight %f, got %f", DefaultMemoryWeight, fallback.memoryWeight)
	}
}
