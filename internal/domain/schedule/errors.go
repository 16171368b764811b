package schedule

import "errors"

var (
	// Schedule Errors
	ErrScheduleNotFound = errors.New("no schedule exists for this month")
	ErrMonthBlocked     = errors.New("month is beyond the allowed creation window")
	ErrScheduleExists   = errors.New("a schedule already exists for this month")
	ErrCreationInFlight = errors.New("schedule creation is already in progress")

	// Edit Mode Errors
	ErrNotInEditMode     = errors.New("schedule is not in edit mode")
	ErrAlreadyInEditMode = errors.New("schedule is already in edit mode")

	// Validation Errors
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidRequestData = errors.New("invalid request data")
)
