package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"levantamiento_service/internal/adapter/http/routes"
	"levantamiento_service/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Levantamiento Service API
// @version         1.0
// @description     Block-by-block review of work surveys (levantamientos de obra).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		zap.L().Fatal("Failed to startup the application", zap.Error(err))
	}
}
