package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goal-planner/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Goal planner API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "goal-planner"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the storage backend answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Storage unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
			})
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
