package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) attendance.BreakRepository {
	return &breakRepository{db: db}
}

// Create implements attendance.BreakRepository.
func (b *breakRepository) Create(ctx context.Context, interval attendance.BreakInterval) (attendance.BreakInterval, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO break_intervals (attendance_id, break_start, break_end, break_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		interval.AttendanceID,
		interval.BreakStart,
		interval.BreakEnd,
		interval.BreakType,
	).Scan(&interval.ID)

	if err != nil {
		if isUniqueViolation(err) {
			// the partial unique index rejects a second open break
			return attendance.BreakInterval{}, attendance.ErrBreakAlreadyActive
		}
		return attendance.BreakInterval{}, fmt.Errorf("failed to create break interval: %w", err)
	}

	return interval, nil
}

// GetOpen implements attendance.BreakRepository.
func (b *breakRepository) GetOpen(ctx context.Context, attendanceID string) (*attendance.BreakInterval, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, attendance_id, break_start, break_end, break_type
		FROM break_intervals
		WHERE attendance_id = $1
		  AND break_end IS NULL
		LIMIT 1
	`

	var interval attendance.BreakInterval
	err := q.QueryRow(ctx, query, attendanceID).Scan(
		&interval.ID, &interval.AttendanceID, &interval.BreakStart, &interval.BreakEnd, &interval.BreakType,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no open break
		}
		return nil, fmt.Errorf("failed to get open break interval: %w", err)
	}

	return &interval, nil
}

// Close implements attendance.BreakRepository.
func (b *breakRepository) Close(ctx context.Context, id string, end time.Time) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE break_intervals
		SET break_end = $1
		WHERE id = $2
		  AND break_end IS NULL
	`

	commandTag, err := q.Exec(ctx, query, end, id)
	if err != nil {
		return fmt.Errorf("failed to close break interval: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrNoActiveBreak
	}

	return nil
}

// ListByAttendance implements attendance.BreakRepository.
func (b *breakRepository) ListByAttendance(ctx context.Context, attendanceID string) ([]attendance.BreakInterval, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, attendance_id, break_start, break_end, break_type
		FROM break_intervals
		WHERE attendance_id = $1
		ORDER BY break_start
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query break intervals: %w", err)
	}
	defer rows.Close()

	var intervals []attendance.BreakInterval
	for rows.Next() {
		var interval attendance.BreakInterval
		if err := rows.Scan(
			&interval.ID, &interval.AttendanceID, &interval.BreakStart, &interval.BreakEnd, &interval.BreakType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan break interval: %w", err)
		}
		intervals = append(intervals, interval)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read break intervals: %w", err)
	}

	return intervals, nil
}
