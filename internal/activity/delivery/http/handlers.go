package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/pkg/response"
)

// Summary godoc
// @Summary     Activity summary
// @Description Completed and failed counts, success rate, best streak and moods for one week or month.
// @Tags        Activity
// @Produce     json
// @Param       X-User-ID header string true  "Caller user id (UUID)"
// @Param       period    query  string false "week or month (default week)"
// @Param       offset    query  int    false "Periods from the current one, negative is the past"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activity/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summary(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Histogram godoc
// @Summary     Completed tasks per period
// @Tags        Activity
// @Produce     json
// @Param       X-User-ID header string true  "Caller user id (UUID)"
// @Param       period    query  string false "week or month (default week)"
// @Param       count     query  int    false "Number of buckets ending with the current period"
// @Success     200 {object} histogramResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activity/histogram [GET]
func (h *handler) Histogram(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processHistogramReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Histogram(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Histogram: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistogramResp(output))
}

// Stats godoc
// @Summary     Stored week/month rollup
// @Tags        Activity
// @Produce     json
// @Param       X-User-ID header string true "Caller user id (UUID)"
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activity/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// AddMood godoc
// @Summary     Log a mood
// @Description Scores outside 1..5 are clamped.
// @Tags        Activity
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller user id (UUID)"
// @Param       body      body   addMoodReq true "Mood"
// @Success     200 {object} addMoodResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activity/moods [POST]
func (h *handler) AddMood(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processAddMoodReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddMood(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddMood: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddMoodResp(output))
}
