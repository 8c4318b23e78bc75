package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/account"
	googleauth "github.com/moonglae/pc-configurator/internal/auth"
	"github.com/moonglae/pc-configurator/internal/catalog"
	"github.com/moonglae/pc-configurator/internal/compare"
	"github.com/moonglae/pc-configurator/internal/compat"
	"github.com/moonglae/pc-configurator/internal/orders"
	"github.com/moonglae/pc-configurator/internal/recommend"
	"github.com/moonglae/pc-configurator/internal/shared/config"
	"github.com/moonglae/pc-configurator/internal/shared/metrics"
	"github.com/moonglae/pc-configurator/internal/shared/server/middleware"
	"github.com/moonglae/pc-configurator/internal/shared/server/respond"
	"github.com/moonglae/pc-configurator/internal/users"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	CatalogHandler   *catalog.Handler
	CompatHandler    *compat.Handler
	RecommendHandler *recommend.Handler
	CompareHandler   *compare.Handler
	UserHandler      *users.Handler
	OrderHandler     *orders.Handler
	AccountHandler   *account.Handler
	GoogleAuth       *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.CompareHandler != nil {
		deps.CompareHandler.RegisterRoutes(api)
	}
	if deps.OrderHandler != nil {
		deps.OrderHandler.RegisterRoutes(api)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterRoutes(api)
	}
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(api)
	}

	// The rule engine endpoints are the expensive ones; cap per-principal rates.
	builds := api.Group("")
	builds.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"BUILDS": {Rate: 5, Burst: 10},
		},
		DefaultGroup: "BUILDS",
	}))
	if deps.CompatHandler != nil {
		deps.CompatHandler.RegisterRoutes(builds)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterBuildRoutes(builds)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
