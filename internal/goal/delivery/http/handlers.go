package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/pkg/response"
)

// CreateGoal godoc
// @Summary     Create a goal
// @Description Creates a goal. Start date defaults to today and the deadline to the planning window end.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Caller user id (UUID)"
// @Param       body      body   createGoalReq true "Goal data"
// @Success     200 {object} goalDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [POST]
func (h *handler) CreateGoal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processCreateGoalReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateGoal(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateGoalResp(output))
}

// ListGoals godoc
// @Summary     List goals
// @Description Returns the caller's goals with their tasks, newest first.
// @Tags        Goals
// @Produce     json
// @Param       X-User-ID header string true "Caller user id (UUID)"
// @Success     200 {object} listGoalsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [GET]
func (h *handler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListGoals(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListGoals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListGoalsResp(output))
}

// DetailGoal godoc
// @Summary     Get goal detail
// @Tags        Goals
// @Produce     json
// @Param       X-User-ID header string true "Caller user id (UUID)"
// @Param       id        path   string true "Goal ID"
// @Success     200 {object} goalDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) DetailGoal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DetailGoal(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailGoalResp(output))
}

// DeleteGoal godoc
// @Summary     Delete a goal
// @Description Removes a goal and all of its tasks.
// @Tags        Goals
// @Produce     json
// @Param       X-User-ID header string true "Caller user id (UUID)"
// @Param       id        path   string true "Goal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [DELETE]
func (h *handler) DeleteGoal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteGoal(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Breakdown godoc
// @Summary     Ingest a generated plan
// @Description Validates the generator output, normalizes it into the goal's window with the daily cap and replaces the goal's tasks.
// @Description Send either the raw generator text in "raw" or already decoded "tasks".
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       true "Caller user id (UUID)"
// @Param       id        path   string       true "Goal ID"
// @Param       body      body   breakdownReq true "Generated plan"
// @Success     200 {object} breakdownResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Unusable plan"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id}/breakdown [POST]
func (h *handler) Breakdown(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processBreakdownReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Breakdown(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Breakdown: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBreakdownResp(output))
}

// ToggleTask godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user id (UUID)"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} toggleTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := h.idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleTask(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleTaskResp(output))
}

// TasksForDay godoc
// @Summary     Tasks due on a day
// @Description Returns every task due on the given calendar day across the caller's goals. Defaults to today.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Caller user id (UUID)"
// @Param       date      query  string false "Day (YYYY-MM-DD)"
// @Success     200 {object} tasksForDayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/today [GET]
func (h *handler) TasksForDay(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processTasksForDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.TasksForDay(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.TasksForDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksForDayResp(output))
}

// ParseDuration godoc
// @Summary     Parse an estimated duration
// @Description Shows how a free-text duration such as "25-35 minutes" is interpreted.
// @Tags        Tools
// @Produce     json
// @Param       text query string true "Duration text"
// @Success     200 {object} parseDurationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/durations/parse [GET]
func (h *handler) ParseDuration(c *gin.Context) {
	var req parseDurationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newParseDurationResp(req.Text))
}
