package planner

import "fmt"

// ErrClusterConfig marks a cluster whose node count cannot satisfy its
// declared HA policy. It is recovered locally: the cluster is excluded
// from packing and listed on the report, not a hard failure of the run.
type ErrClusterConfig struct {
	error
	ClusterID string
}

func NewErrClusterConfig(clusterID string, format string, args ...any) *ErrClusterConfig {
	return &ErrClusterConfig{
		error:     fmt.Errorf("cluster %s: %s", clusterID, fmt.Sprintf(format, args...)),
		ClusterID: clusterID,
	}
}

// ErrInvalidInput marks malformed input such as negative or NaN demand or
// capacity values. This is a caller bug, not a planning scenario: Plan
// fails fast and returns no partial report.
type ErrInvalidInput struct {
	error
}

func NewErrInvalidInput(format string, args ...any) *ErrInvalidInput {
	return &ErrInvalidInput{fmt.Errorf(format, args...)}
}
