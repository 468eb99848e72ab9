package postgresql

import (
	"context"
	"fmt"

	"github.com/staffdesk/checkin-backend-go/internal/domain/report"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// GetDailyRows implements report.Repository.
func (r *reportRepository) GetDailyRows(ctx context.Context, date string) ([]report.Row, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id,
			a.staff_id,
			s.name,
			a.check_in_time,
			a.check_out_time,
			a.is_late,
			a.late_reason,
			a.total_break_minutes,
			EXISTS (
				SELECT 1
				FROM break_intervals b
				WHERE b.attendance_id = a.id
				  AND b.break_end IS NULL
			) AS on_break,
			(
				SELECT b.break_type
				FROM break_intervals b
				WHERE b.attendance_id = a.id
				  AND b.break_end IS NULL
				LIMIT 1
			) AS break_type,
			(
				SELECT b.break_start
				FROM break_intervals b
				WHERE b.attendance_id = a.id
				  AND b.break_end IS NULL
				LIMIT 1
			) AS break_start
		FROM attendance_records a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date = $1
		ORDER BY a.check_in_time
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily report rows: %w", err)
	}
	defer rows.Close()

	var result []report.Row
	for rows.Next() {
		var row report.Row
		if err := rows.Scan(
			&row.AttendanceID,
			&row.StaffID,
			&row.StaffName,
			&row.CheckInTime,
			&row.CheckOutTime,
			&row.IsLate,
			&row.LateReason,
			&row.TotalBreakMinutes,
			&row.OnBreak,
			&row.BreakType,
			&row.BreakStart,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily report row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily report rows: %w", err)
	}

	return result, nil
}

// GetLateCheckIns implements report.Repository.
func (r *reportRepository) GetLateCheckIns(ctx context.Context, date string) ([]report.LateCheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.name, a.check_in_time, a.late_reason
		FROM attendance_records a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date = $1
		  AND a.is_late = TRUE
		ORDER BY a.check_in_time DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query late check-ins: %w", err)
	}
	defer rows.Close()

	var result []report.LateCheckIn
	for rows.Next() {
		var entry report.LateCheckIn
		if err := rows.Scan(&entry.StaffName, &entry.CheckInTime, &entry.LateReason); err != nil {
			return nil, fmt.Errorf("failed to scan late check-in: %w", err)
		}
		result = append(result, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read late check-ins: %w", err)
	}

	return result, nil
}

// GetLocationHistory implements report.Repository.
func (r *reportRepository) GetLocationHistory(ctx context.Context, date string) ([]report.LocationEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.name, a.check_in_time, loc.ip_address, loc.user_agent, loc.is_mobile, loc.created_at
		FROM location_logs loc
		JOIN attendance_records a ON a.id = loc.attendance_id
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date = $1
		ORDER BY a.check_in_time DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query location history: %w", err)
	}
	defer rows.Close()

	var result []report.LocationEntry
	for rows.Next() {
		var entry report.LocationEntry
		if err := rows.Scan(
			&entry.StaffName,
			&entry.CheckInTime,
			&entry.IPAddress,
			&entry.UserAgent,
			&entry.IsMobile,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location entry: %w", err)
		}
		result = append(result, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read location history: %w", err)
	}

	return result, nil
}
