package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements staff.StaffRepository.
func (s *staffRepository) Create(ctx context.Context, member staff.StaffMember) (staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO staff (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		member.Name,
		member.Email,
		member.PasswordHash,
		member.Role,
	).Scan(&member.ID, &member.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return staff.StaffMember{}, staff.ErrEmailExists
		}
		return staff.StaffMember{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return member, nil
}

// GetByID implements staff.StaffRepository.
func (s *staffRepository) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM staff
		WHERE id = $1
	`

	var member staff.StaffMember
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member by ID: %w", err)
	}

	return member, nil
}

// GetByEmail implements staff.StaffRepository.
func (s *staffRepository) GetByEmail(ctx context.Context, email string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM staff
		WHERE email = $1
	`

	var member staff.StaffMember
	err := q.QueryRow(ctx, query, email).Scan(
		&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, fmt.Errorf("failed to get staff member by email: %w", err)
	}

	return member, nil
}

// List implements staff.StaffRepository.
func (s *staffRepository) List(ctx context.Context) ([]staff.StaffMember, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM staff
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.StaffMember
	for rows.Next() {
		var member staff.StaffMember
		if err := rows.Scan(
			&member.ID, &member.Name, &member.Email, &member.PasswordHash, &member.Role, &member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff list: %w", err)
	}

	return members, nil
}

// UpdatePassword implements staff.StaffRepository.
func (s *staffRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, s.db)

	query := `UPDATE staff SET password_hash = $1 WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// Delete implements staff.StaffRepository.
func (s *staffRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM staff WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// CountAdmins implements staff.StaffRepository.
func (s *staffRepository) CountAdmins(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT COUNT(*) FROM staff WHERE role = 'admin'`

	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}
