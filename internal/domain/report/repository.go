package report

import "context"

// Repository defines read-only aggregation queries over the attendance
// ledger, break tracker and location logs.
type Repository interface {
	// GetDailyRows retrieves all attendance rows for a local calendar day,
	// joined with staff names and open-break state, ordered by check-in time
	GetDailyRows(ctx context.Context, date string) ([]Row, error)

	// GetLateCheckIns retrieves the late arrivals for a day, newest first
	GetLateCheckIns(ctx context.Context, date string) ([]LateCheckIn, error)

	// GetLocationHistory retrieves check-in client metadata for a day,
	// newest first
	GetLocationHistory(ctx context.Context, date string) ([]LocationEntry, error)
}
