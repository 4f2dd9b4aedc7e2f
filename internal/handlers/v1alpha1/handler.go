// Package v1alpha1 contains the HTTP handlers of the capacity planner
// REST API.
package v1alpha1

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateim4/archer-capacity-planner/internal/handlers/validator"
	"github.com/mateim4/archer-capacity-planner/internal/service"
)

type ServiceHandler struct {
	plannerSrv *service.PlannerService
	validator  *validator.Validator
}

func NewServiceHandler(plannerSrv *service.PlannerService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewCapacityPlanValidationRules()...)
	return &ServiceHandler{
		plannerSrv: plannerSrv,
		validator:  v,
	}
}

// Routes mounts all API endpoints on the router.
func (h *ServiceHandler) Routes(router chi.Router) {
	router.Post("/api/v1/capacity/plan", h.CreateCapacityPlan)
	router.Get("/api/v1/info", h.GetInfo)
	router.Get("/health", h.GetHealth)
}
