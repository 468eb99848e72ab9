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

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			staff_id, date, check_in_time, check_out_time,
			is_late, late_reason, total_break_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		record.CheckInTime,
		record.CheckOutTime,
		record.IsLate,
		record.LateReason,
		record.TotalBreakMinutes,
	).Scan(&record.ID)

	if err != nil {
		if isUniqueViolation(err) {
			// losing the insert race means someone already checked in today
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.staff_id, r.date, r.check_in_time, r.check_out_time,
			   r.is_late, r.late_reason, r.total_break_minutes,
			   s.name AS staff_name
		FROM attendance_records r
		LEFT JOIN staff s ON s.id = r.staff_id
		WHERE r.id = $1
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.StaffID, &record.Date, &record.CheckInTime, &record.CheckOutTime,
		&record.IsLate, &record.LateReason, &record.TotalBreakMinutes,
		&record.StaffName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return record, nil
}

// GetByStaffAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, date, check_in_time, check_out_time,
			   is_late, late_reason, total_break_minutes
		FROM attendance_records
		WHERE staff_id = $1
		  AND date = $2
		LIMIT 1
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, staffID, date).Scan(
		&record.ID, &record.StaffID, &record.Date, &record.CheckInTime, &record.CheckOutTime,
		&record.IsLate, &record.LateReason, &record.TotalBreakMinutes,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance record by staff and date: %w", err)
	}

	return &record, nil
}

// GetRecent implements attendance.Repository.
func (a *attendanceRepository) GetRecent(ctx context.Context, staffID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, date, check_in_time, check_out_time,
			   is_late, late_reason, total_break_minutes
		FROM attendance_records
		WHERE staff_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.StaffID, &record.Date, &record.CheckInTime, &record.CheckOutTime,
			&record.IsLate, &record.LateReason, &record.TotalBreakMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent attendance records: %w", err)
	}

	return records, nil
}

// SetCheckOut implements attendance.Repository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out_time = $1
		WHERE id = $2
		  AND check_out_time IS NULL
	`

	commandTag, err := q.Exec(ctx, query, checkOut, id)
	if err != nil {
		return fmt.Errorf("failed to set check-out time: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}

	return nil
}

// AddBreakMinutes implements attendance.Repository.
func (a *attendanceRepository) AddBreakMinutes(ctx context.Context, id string, minutes int) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET total_break_minutes = total_break_minutes + $1
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, minutes, id)
	if err != nil {
		return fmt.Errorf("failed to add break minutes: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
