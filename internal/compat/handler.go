package compat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/shared/metrics"
	"github.com/moonglae/pc-configurator/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/builds/validate", h.validate)
}

type validateRequest struct {
	ComponentIDs []int64 `json:"component_ids"`
}

func (h *Handler) validate(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}

	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.ComponentIDs) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "component_ids is required", []map[string]string{
			{"field": "component_ids", "issue": "required"},
		})
		return
	}

	result, err := h.Svc.ValidateBuild(c.Request.Context(), req.ComponentIDs)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to validate build", nil)
		return
	}

	metrics.IncValidation(result.IsValid)
	c.Set("buildValid", result.IsValid)
	respond.JSON(c, http.StatusOK, result)
}
