package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptshq/config"
	"promptshq/internal/api"
	"promptshq/internal/database"
	"promptshq/internal/fixtures"
	"promptshq/internal/services"
	"promptshq/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title PromptsHQ API
// @version 1.0
// @description Catalog, prompt enhancer and Mermaid generator behind the PromptsHQ pages.
// @description Every JSON response is a {status, message, data} envelope whose message is the toast text.

// @contact.name PromptsHQ Maintainers

// @host localhost:8080
// @BasePath /api/v1
func main() {
	root := &cobra.Command{
		Use:          "promptshq",
		Short:        "PromptsHQ catalog and generator API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "check-fixtures",
			Short: "Validate the embedded fixture data and print a summary",
			RunE: func(cmd *cobra.Command, args []string) error {
				fx, err := fixtures.Load()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "content: %d, submissions: %d, drafts: %d, favorites: %d, ai models: %d\n",
					len(fx.Content), len(fx.Submissions), len(fx.Drafts), len(fx.Favorites), len(fx.AIModels))
				return nil
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)
	ctx := context.Background()

	store, db, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	cache := services.NoopGenerationCache
	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		logger.Log.Warn("Redis unavailable, generation cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
		cache = services.NewRedisGenerationCache(rdb, cfg.GenerationCacheTTL, logger.Log)
		logger.Log.Info("Generation cache enabled", zap.String("addr", cfg.RedisFullAddr()))
	}

	runner := services.NewJobRunner(cfg.JobRetention, logger.Log)
	defer runner.Close()

	router, err := api.NewRouter(cfg, api.Services{
		Catalog:    services.NewCatalogService(store),
		Workspace:  services.NewWorkspaceService(store),
		Generation: services.NewGenerationService(runner, store, cache, cfg.EnhanceDelay, cfg.DiagramDelay),
		AIModels:   services.NewAIModelService(store),
	})
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case sig := <-quit:
		logger.Log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
