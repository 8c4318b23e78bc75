package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moonglae/pc-configurator/internal/account"
	googleauth "github.com/moonglae/pc-configurator/internal/auth"
	"github.com/moonglae/pc-configurator/internal/catalog"
	"github.com/moonglae/pc-configurator/internal/compare"
	"github.com/moonglae/pc-configurator/internal/compat"
	"github.com/moonglae/pc-configurator/internal/orders"
	"github.com/moonglae/pc-configurator/internal/recommend"
	"github.com/moonglae/pc-configurator/internal/shared/config"
	"github.com/moonglae/pc-configurator/internal/shared/server"
	"github.com/moonglae/pc-configurator/internal/shared/storage/db"
	"github.com/moonglae/pc-configurator/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	CatalogRepo catalog.Repo
	OrdersRepo  orders.Repo
	UsersRepo   users.Repo

	CompatService  *compat.Service
	OrdersService  *orders.Service
	UsersService   *users.Service
	AccountService *account.Service

	CatalogHandler   *catalog.Handler
	CompatHandler    *compat.Handler
	RecommendHandler *recommend.Handler
	CompareHandler   *compare.Handler
	OrdersHandler    *orders.Handler
	UsersHandler     *users.Handler
	AccountHandler   *account.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		CatalogHandler:   app.CatalogHandler,
		CompatHandler:    app.CompatHandler,
		RecommendHandler: app.RecommendHandler,
		CompareHandler:   app.CompareHandler,
		UserHandler:      app.UsersHandler,
		OrderHandler:     app.OrdersHandler,
		AccountHandler:   app.AccountHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var catalogRepo catalog.Repo
	var orderRepo orders.Repo
	var userRepo users.Repo

	if app.DB != nil {
		catalogRepo = &catalog.PGRepo{DB: app.DB}
		orderRepo = &orders.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		memCatalog := catalog.NewMemoryRepo()
		seedCatalog(memCatalog)
		catalogRepo = memCatalog
		orderRepo = orders.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	compatSvc := &compat.Service{Repo: catalogRepo}
	orderSvc := orders.NewService(orderRepo, catalogRepo)
	userSvc := users.NewService(userRepo)
	accountSvc := account.NewService(orderRepo)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.CatalogRepo = catalogRepo
	app.OrdersRepo = orderRepo
	app.UsersRepo = userRepo
	app.CompatService = compatSvc
	app.OrdersService = orderSvc
	app.UsersService = userSvc
	app.AccountService = accountSvc
	app.CatalogHandler = catalog.NewHandler(catalogRepo)
	app.CompatHandler = compat.NewHandler(compatSvc)
	app.RecommendHandler = recommend.NewHandler(catalogRepo)
	app.CompareHandler = compare.NewHandler(catalogRepo)
	app.OrdersHandler = orders.NewHandler(orderSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.AccountHandler = account.NewHandler(accountSvc)
	app.GoogleAuth = googleAuthSvc

	if app.CatalogHandler == nil || app.CompatHandler == nil || app.RecommendHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}
