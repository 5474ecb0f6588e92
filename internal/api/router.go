package api

import (
	"slices"

	"promptshq/config"
	"promptshq/internal/api/v1/ai_model"
	"promptshq/internal/api/v1/common"
	"promptshq/internal/api/v1/create_mermaid"
	"promptshq/internal/api/v1/create_prompt"
	"promptshq/internal/api/v1/export"
	"promptshq/internal/api/v1/home"
	"promptshq/internal/api/v1/jobs"
	"promptshq/internal/api/v1/library"
	"promptshq/internal/api/v1/my_page"
	"promptshq/internal/api/v1/submit"
	"promptshq/internal/middleware"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services are built once in main and shared by every handler.
type Services struct {
	Catalog    *services.CatalogService
	Workspace  *services.WorkspaceService
	Generation *services.GenerationService
	AIModels   *services.AIModelService
}

func NewRouter(cfg *config.Config, svc Services) (*gin.Engine, error) {
	if err := utils.SetupValidator(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), middleware.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", common.ToastHeader, middleware.SessionHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(cfg.CORSOrigins) == 0 || slices.Contains(cfg.CORSOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		utils.Success(c, "ok", nil)
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session())
	{
		home.RegisterRoutes(v1, home.NewHandler(svc.Catalog))
		library.RegisterRoutes(v1, library.NewHandler(svc.Catalog, svc.Workspace))
		create_prompt.RegisterRoutes(v1, create_prompt.NewHandler(svc.Generation, svc.Workspace, svc.AIModels))
		create_mermaid.RegisterRoutes(v1, create_mermaid.NewHandler(svc.Generation, svc.Workspace))
		jobs.RegisterRoutes(v1, jobs.NewHandler(svc.Generation))
		submit.RegisterRoutes(v1, submit.NewHandler(svc.Workspace))
		my_page.RegisterRoutes(v1, my_page.NewHandler(svc.Workspace))
		export.RegisterRoutes(v1, export.NewHandler())
		ai_model.RegisterRoutes(v1, ai_model.NewHandler(svc.AIModels))
	}

	return router, nil
}
