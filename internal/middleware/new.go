package middleware

import (
	"goal-planner/pkg/log"
)

// Middleware groups the gin handlers shared by every domain's routes.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. breakdownPerMin bounds how many plan
// ingestions one user may submit per minute.
func New(l log.Logger, breakdownPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(breakdownPerMin),
	}
}
