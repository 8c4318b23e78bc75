package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/shared/server/respond"
)

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/components", h.list)
	rg.GET("/components/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	filter := Filter{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	if raw := c.Query("category"); raw != "" {
		category := Category(raw)
		if !category.Valid() {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category", []map[string]string{
				{"field": "category", "issue": "must be one of cpu, motherboard, ram, gpu, psu"},
			})
			return
		}
		filter.Category = category
	}
	if raw := c.Query("min_price"); raw != "" {
		filter.MinPrice, _ = strconv.ParseFloat(raw, 64)
	}
	if raw := c.Query("max_price"); raw != "" {
		filter.MaxPrice, _ = strconv.ParseFloat(raw, 64)
	}

	components, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list components", nil)
		return
	}
	if components == nil {
		components = []Component{}
	}
	respond.JSON(c, http.StatusOK, components)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid component id", nil)
		return
	}
	component, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "component not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load component", nil)
		return
	}
	respond.JSON(c, http.StatusOK, component)
}
