package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrNoDataFound      = errors.New("no schedule data found for the specified period")
)
