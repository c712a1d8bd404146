package main

import (
	"os"

	"solar-economics/internal/api/handlers"
	"solar-economics/internal/api/middleware"
	"solar-economics/internal/config"
	"solar-economics/internal/tariff"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.ReadServer(os.Getenv("SERVER_CONFIG"))
	if err != nil {
		logger.Fatal().Err(err).Msg("read server config")
	}

	catalog := tariff.DefaultCatalog()
	if cfg.TariffFile != "" {
		catalog, err = tariff.Load(cfg.TariffFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.TariffFile).Msg("load tariff catalog")
		}
		logger.Info().Str("path", cfg.TariffFile).Int("tariffs", len(catalog.All())).Msg("tariff catalog loaded")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	evaluateHandler := handlers.NewEvaluateHandler(catalog)
	projectHandler := handlers.NewProjectHandler(catalog)
	compareHandler := handlers.NewCompareHandler()
	tariffHandler := handlers.NewTariffHandler(catalog)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluateHandler.Evaluate)
		api.POST("/project", projectHandler.Project)
		api.POST("/compare", compareHandler.Compare)

		api.GET("/tariffs", tariffHandler.ListTariffs)
		api.GET("/defaults", tariffHandler.Defaults)
	}

	logger.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("starting API server")
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
