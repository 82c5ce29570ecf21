package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"goal-planner/internal/model"
	"goal-planner/pkg/response"
)

const (
	UserIDHeader = "X-User-ID"
	scopeKey     = "scope"
)

// Scope requires a UUID in the X-User-ID header and stores it on the context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		id, err := uuid.Parse(raw)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Scope: rejected user id %q: %v", raw, err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{UserID: id.String()})
		c.Next()
	}
}

// GetScope returns the scope stored by Scope.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// SetScope stores sc on the context. Tests use it to skip the header check.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
