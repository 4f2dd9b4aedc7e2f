package planner

import (
	"errors"
	"math"
	"testing"
)

func TestReserveFraction(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		nodeCount int
		policy    HAPolicy
		want      float64
		wantErr   bool
	}{
		{name: "n0 keeps everything", nodeCount: 3, policy: HAPolicyN0, want: 1.0},
		{name: "n1 with four nodes", nodeCount: 4, policy: HAPolicyN1, want: 0.75},
		{name: "n2 with four nodes", nodeCount: 4, policy: HAPolicyN2, want: 0.5},
		{name: "n1 with two nodes", nodeCount: 2, policy: HAPolicyN1, want: 0.5},
		{name: "n1 with one node rejected", nodeCount: 1, policy: HAPolicyN1, wantErr: true},
		{name: "n2 with two nodes rejected", nodeCount: 2, policy: HAPolicyN2, wantErr: true},
		{name: "n0 single node", nodeCount: 1, policy: HAPolicyN0, want: 1.0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReserveFraction(tc.nodeCount, tc.policy)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got fraction %f", got)
				}
				var cfgErr *ErrClusterConfig
				if !errors.As(err, &cfgErr) {
					t.Errorf("expected ErrClusterConfig, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected fraction %f, got %f", tc.want, got)
			}
		})
	}
}

func TestReservedNodes(t *testing.T) {
	t.Parallel()
	if got := HAPolicyN0.ReservedNodes(); got != 0 {
		t.Errorf("N+0 should reserve 0 nodes, got %d", got)
	}
	if got := HAPolicyN1.ReservedNodes(); got != 1 {
		t.Errorf("N+1 should reserve 1 node, got %d", got)
	}
	if got := HAPolicyN2.ReservedNodes(); got != 2 {
		t.Errorf("N+2 should reserve 2 nodes, got %d", got)
	}
}

func TestHAPolicyValid(t *testing.T) {
	t.Parallel()
	for _, p := range []HAPolicy{HAPolicyN0, HAPolicyN1, HAPolicyN2} {
		if !p.Valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if HAPolicy("N+3").Valid() {
		t.Error("expected N+3 to be invalid")
	}
	if HAPolicy("").Valid() {
		t.Error("expected empty policy to be invalid")
	}
}
