package http

import (
	"errors"
	"net/http"

	"goal-planner/internal/goal"
	pkgErrors "goal-planner/pkg/errors"
)

var (
	errMissingID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errMissingScope = pkgErrors.ErrUnauthorized
)

// mapError translates use case errors into HTTP errors. Unknown errors are 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, goal.ErrGoalNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, goal.ErrGoalNotFound.Error())
	case errors.Is(err, goal.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, goal.ErrTaskNotFound.Error())
	case errors.Is(err, goal.ErrEmptyTitle),
		errors.Is(err, goal.ErrEmptyInput),
		errors.Is(err, goal.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, goal.ErrInvalidPayload),
		errors.Is(err, goal.ErrNoTasksParsed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
