package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/configs"
	"github.com/akaXala/ESCOMIDA/middlewares"
	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/routes"
)

func main() {
	cfg := configs.LoadConfig()

	if err := logger.Init(cfg.IsDev()); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.L().Fatal("db connection failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(); err != nil {
		logger.L().Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedCatalog(); err != nil {
		logger.L().Fatal("seed catalog failed", zap.Error(err))
	}

	// HTTP
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestID())

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
