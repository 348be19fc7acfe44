package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "levantamiento_service/docs" // swag generated
	"levantamiento_service/internal/adapter/http/handlers"
	"levantamiento_service/internal/adapter/http/middleware"
	"levantamiento_service/internal/adapter/persistence"
	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/infrastructure/config"
	"levantamiento_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.Server.GinMode)

	store, err := persistence.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	surveyUseCase := usecase.NewSurveyReviewUseCase(store.Surveys, store.Events)

	router := NewRouter(surveyUseCase, cfg.Principal.ToPrincipal())

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info("[http] starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return eris.Wrap(err, "failed to start the application")
	case <-ctx.Done():
	}

	zap.L().Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "graceful shutdown")
	}
	return nil
}

// NewRouter builds the engine with middlewares, docs and the /v1 routes.
func NewRouter(surveyUseCase usecase.ISurveyReviewUseCase, fallback auth.Principal) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, fallback)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	budgetHandler := handlers.NewBudgetHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSurveyRoutes(v1, surveyHandler)
	addBudgetRoutes(v1, budgetHandler)
	return router
}

func setMiddlewares(router *gin.Engine, fallback auth.Principal) {
	logger := zap.L()
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Principal(fallback))
}
