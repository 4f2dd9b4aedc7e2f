package planner

const (
	// DefaultWarningThresholdPct flags a resource as a Warning bottleneck.
	DefaultWarningThresholdPct = 80.0
	// DefaultCriticalThresholdPct flags a resource as Critical. HCI
	// operational guidance treats sustained utilization above 95% as
	// failure-risk territory.
	DefaultCriticalThresholdPct = 95.0

	// maxUtilizationPct caps reported utilization so over-allocation stays
	// visible without producing unbounded numbers.
	maxUtilizationPct = 200.0
)

// Severity classifies a cluster resource's post-placement utilization.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "none"
	}
}

// BottleneckDetector computes per-cluster utilization after packing and
// classifies each resource dimension against the warning and critical
// thresholds.
type BottleneckDetector struct {
	warningPct  float64
	criticalPct float64
}

// BottleneckDetectorOption is a functional option for configuring a
// BottleneckDetector.
type BottleneckDetectorOption func(*BottleneckDetector)

// WithWarningThreshold sets the warning threshold percentage. Values
// outside (0, 100] are ignored and the default is kept.
func WithWarningThreshold(pct float64) BottleneckDetectorOption {
	return func(d *BottleneckDetector) {
		if pct > 0 && pct <= 100 {
			d.warningPct = pct
		}
	}
}

// WithCriticalThreshold sets the critical threshold percentage. Values
// outside (0, 100] are ignored and the default is kept.
func WithCriticalThreshold(pct float64) BottleneckDetectorOption {
	return func(d *BottleneckDetector) {
		if pct > 0 && pct <= 100 {
			d.criticalPct = pct
		}
	}
}

// NewBottleneckDetector creates a detector with the default 80/95
// thresholds. Optional BottleneckDetectorOption values can be supplied to
// override them.
func NewBottleneckDetector(opts ...BottleneckDetectorOption) *BottleneckDetector {
	d := &BottleneckDetector{
		warningPct:  DefaultWarningThresholdPct,
		criticalPct: DefaultCriticalThresholdPct,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// UtilizationPct converts used/total into a percentage. A zero-capacity
// dimension reports 0 when unused and 100 when anything was placed on it.
// The result is clamped to [0, 200] so over-allocation remains visible.
func (d *BottleneckDetector) UtilizationPct(used, total float64) float64 {
	if total == 0 {
		if used == 0 {
			return 0
		}
		return 100
	}

	pct := used / total * 100
	if pct < 0 {
		return 0
	}
	if pct > maxUtilizationPct {
		return maxUtilizationPct
	}
	return pct
}

// Severity classifies a utilization percentage.
func (d *BottleneckDetector) Severity(pct float64) Severity {
	switch {
	case pct >= d.criticalPct:
		return SeverityCritical
	case pct >= d.warningPct:
		return SeverityWarning
	default:
		return SeverityNone
	}
}

// Analyze computes utilization for every cluster from its effective
// capacity and the capacity remaining after packing. Returns utilizations
// keyed by cluster id and whether any resource anywhere is Critical.
func (d *BottleneckDetector) Analyze(effective, remaining map[string]ResourceVector) (map[string]ClusterUtilization, bool) {
	utilizations := make(map[string]ClusterUtilization, len(effective))
	critical := false

	for id, total := range effective {
		left := remaining[id]
		used := total.Sub(left)

		u := ClusterUtilization{
			ClusterID:  id,
			CPUPct:     d.UtilizationPct(used.CPUCores, total.CPUCores),
			MemoryPct:  d.UtilizationPct(used.MemoryGB, total.MemoryGB),
			StoragePct: d.UtilizationPct(used.StorageGB, total.StorageGB),
		}

		// Fixed cpu, memory, storage order keeps the report deterministic.
		for _, dim := range []struct {
			resource Resource
			pct      float64
		}{
			{ResourceCPU, u.CPUPct},
			{ResourceMemory, u.MemoryPct},
			{ResourceStorage, u.StoragePct},
		} {
			severity := d.Severity(dim.pct)
			if severity == SeverityNone {
				continue
			}
			u.Bottlenecks = append(u.Bottlenecks, dim.resource)
			if severity == SeverityCritical {
				critical = true
			}
		}

		utilizations[id] = u
	}

	return utilizations, critical
}
