package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mateim4/archer-capacity-planner/internal/planner"
	"github.com/mateim4/archer-capacity-planner/internal/service"
)

func testWorkload() []planner.WorkloadItem {
	return []planner.WorkloadItem{
		{ID: "vm1", CPUCores: 8, MemoryGB: 32, StorageGB: 200},
		{ID: "vm2", CPUCores: 4, MemoryGB: 16, StorageGB: 100},
	}
}

func testClusters() []planner.ClusterCandidate {
	return []planner.ClusterCandidate{
		{
			ID:                    "cluster-a",
			NodeCount:             4,
			CPUCoresPerNode:       16,
			MemoryGBPerNode:       128,
			StorageGBTotal:        4000,
			HAPolicy:              planner.HAPolicyN1,
			CPUOvercommitRatio:    2.0,
			MemoryOvercommitRatio: 1.0,
		},
	}
}

var _ = Describe("PlannerService", func() {
	var svc *service.PlannerService

	BeforeEach(func() {
		svc = service.NewPlannerService(planner.NewCapacityPlanner())
	})

	Describe("CreatePlan", func() {
		It("places the workload and reports sufficiency", func() {
			report, err := svc.CreatePlan(context.TODO(), testWorkload(), testClusters())
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Assignments).To(HaveLen(2))
			Expect(report.Unplaced).To(BeEmpty())
			Expect(report.Sufficient).To(BeTrue())
			Expect(report.Utilizations).To(HaveKey("cluster-a"))
		})

		It("returns an empty sufficient report for empty input", func() {
			report, err := svc.CreatePlan(context.TODO(), nil, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Assignments).To(BeEmpty())
			Expect(report.Unplaced).To(BeEmpty())
			Expect(report.Sufficient).To(BeTrue())
		})

		It("reports unplaced items when no clusters are given", func() {
			report, err := svc.CreatePlan(context.TODO(), testWorkload(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Unplaced).To(HaveLen(2))
			Expect(report.Unplaced[0].Reason).To(Equal(planner.ReasonNoClustersProvided))
			Expect(report.Sufficient).To(BeFalse())
		})

		It("lists HA-invalid clusters on the report without failing", func() {
			clusters := testClusters()
			clusters[0].NodeCount = 2
			clusters[0].HAPolicy = planner.HAPolicyN2

			report, err := svc.CreatePlan(context.TODO(), testWorkload(), clusters)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.InvalidClusters).To(HaveLen(1))
			Expect(report.InvalidClusters[0].ClusterID).To(Equal("cluster-a"))
			Expect(report.Unplaced).To(HaveLen(2))
		})

		It("rejects malformed input with ErrInvalidRequest", func() {
			workload := []planner.WorkloadItem{{ID: "bad", CPUCores: -4}}
			report, err := svc.CreatePlan(context.TODO(), workload, testClusters())
			Expect(report).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidRequest{}))
		})
	})
})
