package planner

// ReserveFraction computes the fraction of raw capacity that remains
// usable after reserving failover nodes, in (0, 1].
//
// N+0 keeps everything; N+1 keeps (n-1)/n; N+2 keeps (n-2)/n. A node
// count that does not exceed the reserve (e.g. N+2 with 2 nodes) is a
// configuration error: the cluster must be excluded from the candidate
// pool and reported invalid, never silently given zero capacity.
func ReserveFraction(nodeCount int, policy HAPolicy) (float64, error) {
	reserved := policy.ReservedNodes()
	usable := nodeCount - reserved
	if usable <= 0 {
		return 0, NewErrClusterConfig("", "%d nodes cannot satisfy HA policy %s (%d reserved)", nodeCount, policy, reserved)
	}
	return float64(usable) / float64(nodeCount), nil
}

// clusterReserveFraction is ReserveFraction with the cluster id attached
// to the configuration error.
func clusterReserveFraction(c ClusterCandidate) (float64, error) {
	fraction, err := ReserveFraction(c.NodeCount, c.HAPolicy)
	if err != nil {
		return 0, NewErrClusterConfig(c.ID, "%d nodes cannot satisfy HA policy %s (%d reserved)", c.NodeCount, c.HAPolicy, c.HAPolicy.ReservedNodes())
	}
	return fraction, nil
}
