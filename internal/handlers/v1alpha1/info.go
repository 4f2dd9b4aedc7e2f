package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/pkg/version"
)

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	render.JSON(w, r, api.Info{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
	})
}

// (GET /health)
func (h *ServiceHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.Health{Status: "ok"})
}
