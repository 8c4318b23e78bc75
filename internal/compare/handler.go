package compare

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/catalog"
	"github.com/moonglae/pc-configurator/internal/shared/server/respond"
)

type Handler struct {
	Repo catalog.Repo
}

func NewHandler(repo catalog.Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/compare", h.compare)
}

func (h *Handler) compare(c *gin.Context) {
	category := catalog.Category(c.Query("category"))
	if !category.Valid() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category", []map[string]string{
			{"field": "category", "issue": "must be one of cpu, motherboard, ram, gpu, psu"},
		})
		return
	}

	ids, err := parseIDs(c.Query("ids"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ids must be a comma-separated list of component ids", nil)
		return
	}
	if len(ids) < 2 || len(ids) > MaxComponents {
		respond.Error(c, http.StatusBadRequest, "validation_error", "compare between 2 and 4 components", []map[string]string{
			{"field": "ids", "issue": "need 2-4 ids"},
		})
		return
	}

	components, err := h.Repo.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load components", nil)
		return
	}

	respond.JSON(c, http.StatusOK, BuildTable(category, components))
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
