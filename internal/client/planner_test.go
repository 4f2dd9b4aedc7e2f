package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/internal/client"
)

func TestClient(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Client Suite")
}

var _ = Describe("planner client", func() {
	var (
		plannerClient *client.PlannerClient
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("NewPlannerClient", func() {
		It("creates client with default timeout when timeout is 0", func() {
			c := client.NewPlannerClient("http://localhost:8080", 0)
			Expect(c).NotTo(BeNil())
		})
	})

	Describe("CreatePlan", func() {
		Context("successful requests", func() {
			It("returns the report on a sufficient plan", func() {
				expectedReport := &api.CapacityPlanReport{
					Assignments: []api.PlacementAssignment{
						{WorkloadItemId: "vm-1", ClusterId: "cluster-a"},
					},
					Sufficient: true,
				}

				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					Expect(r.Method).To(Equal(http.MethodPost))
					Expect(r.URL.Path).To(Equal("/api/v1/capacity/plan"))
					Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
					Expect(r.Header.Get("x-request-id")).NotTo(BeEmpty())

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusOK)
					_ = json.NewEncoder(w).Encode(expectedReport)
				}))
				defer server.Close()

				plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

				request := &api.CapacityPlanRequest{
					Workload: []api.WorkloadItem{
						{Id: "vm-1", CpuCores: 2, MemoryGB: 4, StorageGB: 20},
					},
					Clusters: []api.ClusterCandidate{
						{Id: "cluster-a", NodeCount: 3, CpuCoresPerNode: 16, MemoryGBPerNode: 64, StorageGBTotal: 1000, HaPolicy: "N+1", CpuOvercommitRatio: 1.0, MemoryOvercommitRatio: 1.0},
					},
				}

				report, err := plannerClient.CreatePlan(ctx, request)

				Expect(err).To(BeNil())
				Expect(report.Sufficient).To(BeTrue())
				Expect(report.Assignments).To(HaveLen(1))
				Expect(report.Assignments[0].ClusterId).To(Equal("cluster-a"))
			})

			It("returns the report when clusters were rejected", func() {
				report := &api.CapacityPlanReport{
					InvalidClusters: []api.InvalidCluster{
						{ClusterId: "cluster-b", Reason: "node_count 2 cannot satisfy ha_policy N+2"},
					},
				}

				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusBadRequest)
					_ = json.NewEncoder(w).Encode(report)
				}))
				defer server.Close()

				plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

				resp, err := plannerClient.CreatePlan(ctx, &api.CapacityPlanRequest{})

				Expect(err).To(BeNil())
				Expect(resp.InvalidClusters).To(HaveLen(1))
				Expect(resp.InvalidClusters[0].ClusterId).To(Equal("cluster-b"))
			})
		})

		Context("error handling", func() {
			It("returns error when the request is rejected with a message", func() {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusBadRequest)
					_ = json.NewEncoder(w).Encode(api.Error{Message: "invalid request"})
				}))
				defer server.Close()

				plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

				_, err := plannerClient.CreatePlan(ctx, &api.CapacityPlanRequest{})

				Expect(err).NotTo(BeNil())
				Expect(err.Error()).To(ContainSubstring("invalid request"))
			})

			It("returns error when status code is 500", func() {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
				defer server.Close()

				plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

				_, err := plannerClient.CreatePlan(ctx, &api.CapacityPlanRequest{})

				Expect(err).NotTo(BeNil())
				Expect(err.Error()).To(ContainSubstring("status 500"))
			})

			It("returns error when the service is unreachable", func() {
				plannerClient = client.NewPlannerClient("http://192.0.2.0:8080", 1*time.Second)

				_, err := plannerClient.CreatePlan(ctx, &api.CapacityPlanRequest{})

				Expect(err).NotTo(BeNil())
				Expect(err.Error()).To(ContainSubstring("failed to call planner service"))
			})
		})
	})

	Describe("GetInfo", func() {
		It("returns the service info", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/info"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(api.Info{VersionName: "v1.2.3", GitCommit: "abc123"})
			}))
			defer server.Close()

			plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

			info, err := plannerClient.GetInfo(ctx)

			Expect(err).To(BeNil())
			Expect(info.VersionName).To(Equal("v1.2.3"))
		})
	})

	Describe("HealthCheck", func() {
		It("succeeds when the service is healthy", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/health"))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

			Expect(plannerClient.HealthCheck(ctx)).To(Succeed())
		})

		It("returns error when status code is not 200", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer server.Close()

			plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

			err := plannerClient.HealthCheck(ctx)

			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("status 503"))
		})

		It("respects context cancellation", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(2 * time.Second)
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			plannerClient = client.NewPlannerClient(server.URL, 5*time.Second)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			Expect(plannerClient.HealthCheck(ctx)).NotTo(BeNil())
		})
	})
})
