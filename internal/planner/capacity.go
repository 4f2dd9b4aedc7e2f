package planner

// EffectiveCPU returns the schedulable core count after applying the CPU
// overcommit ratio and the HA reserve fraction to the raw capacity.
func EffectiveCPU(c ClusterCandidate, reserveFraction float64) float64 {
	return float64(c.RawCPUCores()) * c.CPUOvercommitRatio * reserveFraction
}

// EffectiveMemory returns the schedulable memory after applying the
// memory overcommit ratio and the HA reserve fraction.
func EffectiveMemory(c ClusterCandidate, reserveFraction float64) float64 {
	return c.RawMemoryGB() * c.MemoryOvercommitRatio * reserveFraction
}

// EffectiveStorage returns the schedulable storage after the HA reserve
// fraction. No overcommit ratio is applied: storage is never assumed
// compressible.
func EffectiveStorage(c ClusterCandidate, reserveFraction float64) float64 {
	return c.StorageGBTotal * reserveFraction
}

// Normalize converts a cluster's raw capacity into the effective capacity
// vector used as the packer's remaining-capacity working state. It returns
// an ErrClusterConfig when the node count cannot satisfy the HA policy.
func Normalize(c ClusterCandidate) (ResourceVector, error) {
	fraction, err := clusterReserveFraction(c)
	if err != nil {
		return ResourceVector{}, err
	}
	return ResourceVector{
		CPUCores:  EffectiveCPU(c, fraction),
		MemoryGB:  EffectiveMemory(c, fraction),
		StorageGB: EffectiveStorage(c, fraction),
	}, nil
}
