package postgresql

import (
	"context"
	"fmt"

	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) attendance.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements attendance.LocationRepository.
func (l *locationRepository) Create(ctx context.Context, log attendance.LocationLog) (attendance.LocationLog, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO location_logs (attendance_id, ip_address, user_agent, is_mobile)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		log.AttendanceID,
		log.IPAddress,
		log.UserAgent,
		log.IsMobile,
	).Scan(&log.ID, &log.CreatedAt)

	if err != nil {
		return attendance.LocationLog{}, fmt.Errorf("failed to create location log: %w", err)
	}

	return log, nil
}
