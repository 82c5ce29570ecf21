package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/internal/middleware"
)

// RegisterRoutes maps the activity endpoints. All of them need a scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	act := rg.Group("/activity", mw.Scope())
	{
		act.GET("/summary", h.Summary)
		act.GET("/histogram", h.Histogram)
		act.GET("/stats", h.Stats)
		act.POST("/moods", h.AddMood)
	}
}
