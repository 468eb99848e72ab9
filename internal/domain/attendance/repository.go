package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create inserts a new attendance record. The (staff_id, date) uniqueness
	// constraint is the final arbiter of duplicate check-ins; a violation is
	// surfaced as ErrAlreadyCheckedIn.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByStaffAndDate retrieves the record for a staff member on a local
	// calendar day; returns nil when none exists
	GetByStaffAndDate(ctx context.Context, staffID string, date string) (*Record, error)

	// GetRecent retrieves the most recent records for a staff member ordered
	// by date descending, at most limit rows
	GetRecent(ctx context.Context, staffID string, limit int) ([]Record, error)

	// SetCheckOut sets the check-out timestamp exactly once
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error

	// AddBreakMinutes atomically adds minutes to the record's accumulator
	AddBreakMinutes(ctx context.Context, id string, minutes int) error

	// Delete removes a record; break intervals and location logs cascade
	Delete(ctx context.Context, id string) error
}

// BreakRepository defines data access methods for break intervals.
type BreakRepository interface {
	// Create opens a new break interval
	Create(ctx context.Context, interval BreakInterval) (BreakInterval, error)

	// GetOpen retrieves the open interval for a record; nil when none
	GetOpen(ctx context.Context, attendanceID string) (*BreakInterval, error)

	// Close sets break_end on an interval
	Close(ctx context.Context, id string, end time.Time) error

	// ListByAttendance retrieves all intervals for a record ordered by start
	ListByAttendance(ctx context.Context, attendanceID string) ([]BreakInterval, error)
}

// LocationRepository defines data access methods for check-in client metadata.
type LocationRepository interface {
	// Create records client metadata alongside a check-in; write-once
	Create(ctx context.Context, log LocationLog) (LocationLog, error)
}
