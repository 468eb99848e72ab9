package staff

import (
	"context"

	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
)

// StaffService defines business logic for staff directory operations
type StaffService interface {
	// Register creates a new staff account; only admins may assign roles
	Register(ctx context.Context, actx auth.Context, req RegisterRequest) (StaffResponse, error)

	// List retrieves all staff members (admin only)
	List(ctx context.Context, actx auth.Context) (ListStaffResponse, error)

	// Get retrieves a single staff member by ID
	Get(ctx context.Context, actx auth.Context, id string) (StaffResponse, error)

	// Delete removes a staff member and all dependent records (admin only)
	Delete(ctx context.Context, actx auth.Context, id string) error

	// ChangePassword updates the caller's own password
	ChangePassword(ctx context.Context, actx auth.Context, req ChangePasswordRequest) error

	// EnsureDefaultAdmin creates the bootstrap admin account when none exists
	EnsureDefaultAdmin(ctx context.Context) error
}
