package report

import (
	"context"

	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
)

// Service defines report aggregation over the attendance ledger.
type Service interface {
	// DailyReport builds one row per attendance record on the given day
	// (admin only). A day with no records yields an empty list.
	DailyReport(ctx context.Context, actx auth.Context, req DailyReportRequest) (DailyReportResponse, error)

	// RecentStats computes on-time/late percentages and average break time
	// over the caller's most recent attendance days.
	RecentStats(ctx context.Context, actx auth.Context, window int) (Stats, error)

	// ExportCSV serializes the daily report rows as CSV (admin only).
	ExportCSV(ctx context.Context, actx auth.Context, req DailyReportRequest) ([]byte, string, error)

	// LateCheckIns lists the day's late arrivals (admin only).
	LateCheckIns(ctx context.Context, actx auth.Context, req DailyReportRequest) ([]LateCheckIn, error)

	// LocationHistory lists the day's check-in client metadata (admin only).
	LocationHistory(ctx context.Context, actx auth.Context, req DailyReportRequest) ([]LocationEntry, error)
}
