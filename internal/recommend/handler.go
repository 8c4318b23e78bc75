package recommend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/catalog"
	"github.com/moonglae/pc-configurator/internal/shared/metrics"
	"github.com/moonglae/pc-configurator/internal/shared/server/respond"
)

type Handler struct {
	Repo catalog.Repo
}

func NewHandler(repo catalog.Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/games", h.games)
	rg.GET("/budgets", h.budgets)
}

// RegisterBuildRoutes mounts the recommendation endpoint; callers keep it on
// a rate-limited group.
func (h *Handler) RegisterBuildRoutes(rg *gin.RouterGroup) {
	rg.POST("/builds/recommend", h.recommend)
}

type recommendRequest struct {
	GameID       string  `json:"game_id"`
	BudgetID     string  `json:"budget_id"`
	CustomBudget float64 `json:"custom_budget"`
	Resolution   string  `json:"resolution"`
	TargetFPS    int     `json:"target_fps"`
	Quality      string  `json:"quality"`
}

type recommendResponse struct {
	RecommendedBuild
	BudgetSpent string    `json:"budget_spent"`
	Forecast    []GameFPS `json:"fps_forecast,omitempty"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	game, ok := GameByID(req.GameID)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown game", fieldIssue("game_id"))
		return
	}
	budget, ok := BudgetByID(req.BudgetID)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown budget range", fieldIssue("budget_id"))
		return
	}
	if budget.ID == customBudgetID && req.CustomBudget <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "custom_budget must be positive", fieldIssue("custom_budget"))
		return
	}
	if _, ok := resolutionMultipliers[req.Resolution]; !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resolution must be 1080p, 1440p or 4K", fieldIssue("resolution"))
		return
	}
	if _, ok := fpsMultipliersGPU[req.TargetFPS]; !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "target_fps must be 60, 120 or 144", fieldIssue("target_fps"))
		return
	}
	quality, ok := QualityByID(req.Quality)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown quality level", fieldIssue("quality"))
		return
	}

	snapshot, err := h.loadCatalog(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load catalog", nil)
		return
	}

	start := time.Now()
	build := Recommend(Request{
		Game:         game,
		Budget:       budget,
		CustomBudget: req.CustomBudget,
		Resolution:   req.Resolution,
		TargetFPS:    req.TargetFPS,
		Quality:      quality,
	}, snapshot)
	metrics.IncRecommendation()
	metrics.ObserveRecommendationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	limit := EffectiveBudget(budget, req.CustomBudget)
	respond.JSON(c, http.StatusOK, recommendResponse{
		RecommendedBuild: build,
		BudgetSpent:      fmt.Sprintf("$%.0f / $%.0f", build.TotalPrice, limit),
		Forecast:         ForecastAll(build, quality, req.Resolution),
	})
}

func (h *Handler) games(c *gin.Context) {
	respond.JSON(c, http.StatusOK, Games)
}

func (h *Handler) budgets(c *gin.Context) {
	respond.JSON(c, http.StatusOK, BudgetRanges)
}

// loadCatalog snapshots every category once per request; the engine never
// touches the repository itself.
func (h *Handler) loadCatalog(ctx context.Context) (Catalog, error) {
	snapshot := make(Catalog, len(catalog.Categories))
	for _, category := range catalog.Categories {
		items, err := h.Repo.List(ctx, catalog.Filter{Category: category})
		if err != nil {
			return nil, err
		}
		snapshot[category] = items
	}
	return snapshot, nil
}

func fieldIssue(field string) []map[string]string {
	return []map[string]string{{"field": field, "issue": "invalid"}}
}
