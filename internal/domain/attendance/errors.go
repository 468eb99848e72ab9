package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")

	// ErrLateReasonRequired is a protocol pause, not a failure: a late mobile
	// check-in suspends until the caller resubmits with a reason.
	ErrLateReasonRequired = errors.New("late reason required")

	// Break errors
	ErrBreakAlreadyActive = errors.New("you already have an active break")
	ErrNoActiveBreak      = errors.New("no active break found")
	ErrInvalidBreakType   = errors.New("break type must be one of: short, regular, lunch")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnauthorized   = errors.New("unauthorized to access this attendance record")
)
