package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/storyreel/storyreel/internal/utils"
	"github.com/storyreel/storyreel/pkg/version"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Health returns service health, used by polling dashboards as a
// connectivity check.
func (h *Handlers) Health(c *gin.Context) {
	utils.Success(c, HealthResponse{
		Status:  "ok",
		Service: "storyreel-api",
		Version: version.Version,
	})
}
