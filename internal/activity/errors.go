package activity

import "errors"

var (
	ErrInvalidPeriod = errors.New("period must be week or month")
	ErrInvalidDate   = errors.New("invalid date")
)
