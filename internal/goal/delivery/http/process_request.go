package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"goal-planner/internal/goal"
	"goal-planner/internal/middleware"
	"goal-planner/internal/model"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errMissingScope
	}
	return sc, nil
}

func (h *handler) idParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// processCreateGoalReq binds the create goal body and parses its dates.
func (h *handler) processCreateGoalReq(c *gin.Context) (goal.CreateGoalInput, error) {
	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return goal.CreateGoalInput{}, err
	}
	return req.toInput(h.cal)
}

// processBreakdownReq binds the breakdown body and the goal id.
func (h *handler) processBreakdownReq(c *gin.Context) (breakdownReq, error) {
	var req breakdownReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.idParam(c)
	if err != nil {
		return req, err
	}
	req.GoalID = id
	return req, req.validate()
}

// processTasksForDayReq binds the optional ?date= query parameter.
func (h *handler) processTasksForDayReq(c *gin.Context) (goal.TasksForDayInput, error) {
	var req tasksForDayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return goal.TasksForDayInput{}, err
	}
	return req.toInput(h.cal)
}
