package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	activityHTTP "goal-planner/internal/activity/delivery/http"
	goalHTTP "goal-planner/internal/goal/delivery/http"
	"goal-planner/internal/middleware"
	"goal-planner/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.breakdownPerMin)

	goalHTTP.RegisterRoutes(api, goalHTTP.New(srv.l, srv.goalUC, srv.cal), mw)
	srv.l.Infof(ctx, "Goal domain registered")

	activityHTTP.RegisterRoutes(api, activityHTTP.New(srv.l, srv.activityUC, srv.cal), mw)
	srv.l.Infof(ctx, "Activity domain registered")
}

// Handler returns the engine wrapped in the CORS handler.
func (srv HTTPServer) Handler() http.Handler {
	origins := srv.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader},
	}).Handler(srv.gin)
}
