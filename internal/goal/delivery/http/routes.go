package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/internal/middleware"
)

// RegisterRoutes maps the goal, task and duration endpoints. Everything except
// the duration tool needs a scope; breakdown is also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	goals := rg.Group("/goals", mw.Scope())
	{
		goals.POST("", h.CreateGoal)
		goals.GET("", h.ListGoals)
		goals.GET("/:id", h.DetailGoal)
		goals.DELETE("/:id", h.DeleteGoal)
		goals.POST("/:id/breakdown", mw.RateLimit(), h.Breakdown)
	}

	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.GET("/today", h.TasksForDay)
		tasks.PATCH("/:id/toggle", h.ToggleTask)
	}

	rg.GET("/durations/parse", h.ParseDuration)
}
