package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/internal/activity"
	"goal-planner/internal/middleware"
	"goal-planner/internal/model"
	pkgErrors "goal-planner/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processSummaryReq(c *gin.Context) (activity.SummaryInput, error) {
	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return activity.SummaryInput{}, err
	}
	return req.toInput()
}

func (h *handler) processHistogramReq(c *gin.Context) (activity.HistogramInput, error) {
	var req histogramReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return activity.HistogramInput{}, err
	}
	return req.toInput()
}

func (h *handler) processAddMoodReq(c *gin.Context) (activity.AddMoodInput, error) {
	var req addMoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return activity.AddMoodInput{}, err
	}
	return req.toInput(h.cal)
}
