// Package planner implements the capacity-aware VM placement engine.
//
// Given a set of workload items (VMs with CPU, memory and storage demand)
// and a set of candidate destination clusters (raw capacity, HA reservation
// policy, overcommit ratios), the engine assigns each VM to exactly one
// cluster or reports it unplaced, then analyzes per-cluster utilization for
// bottlenecks. Placement uses a first-fit-decreasing heuristic: it is not
// globally optimal (bin packing is NP-hard) but it is deterministic, fast
// and explainable, which matters more for a planning aid whose output a
// human reviews and can override.
//
// A planning run is a pure function of its inputs: the engine holds no
// shared mutable state, so concurrent runs need no locking.
package planner
