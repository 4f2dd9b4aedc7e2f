package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/internal/handlers/v1alpha1/mappers"
	"github.com/mateim4/archer-capacity-planner/internal/service"
	"github.com/mateim4/archer-capacity-planner/pkg/log"
	"github.com/mateim4/archer-capacity-planner/pkg/requestid"
)

// (POST /api/v1/capacity/plan)
func (h *ServiceHandler) CreateCapacityPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.NewDebugLogger("plan_handler").
		WithContext(ctx).
		Operation("create_capacity_plan").
		Build()

	var req api.CapacityPlanRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Error(err).Log()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: fmt.Sprintf("malformed request body: %v", err), RequestId: requestid.FromContextPtr(ctx)})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Error(err).Log()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)})
		return
	}

	logger.Step("plan").
		WithInt("workload_items", len(req.Workload)).
		WithInt("cluster_candidates", len(req.Clusters)).
		Log()

	report, err := h.plannerSrv.CreatePlan(ctx, mappers.WorkloadFromAPI(req.Workload), mappers.ClustersFromAPI(req.Clusters))
	if err != nil {
		switch err.(type) {
		case *service.ErrInvalidRequest:
			logger.Error(err).Log()
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)})
		default:
			logger.Error(err).Log()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.Error{Message: "failed to compute capacity plan", RequestId: requestid.FromContextPtr(ctx)})
		}
		return
	}

	logger.Success().
		WithInt("assignments", len(report.Assignments)).
		WithInt("unplaced", len(report.Unplaced)).
		WithBool("sufficient", report.Sufficient).
		Log()

	// A cluster that fails HA validation turns the response into a 400,
	// but the report over the remaining valid clusters is still returned.
	status := http.StatusOK
	if len(report.InvalidClusters) > 0 {
		status = http.StatusBadRequest
	}
	render.Status(r, status)
	render.JSON(w, r, mappers.ReportToAPI(*report, requestid.FromContextPtr(ctx)))
}
