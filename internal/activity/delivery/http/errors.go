package http

import (
	"errors"
	"net/http"

	"goal-planner/internal/activity"
	pkgErrors "goal-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, activity.ErrInvalidPeriod),
		errors.Is(err, activity.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
