package staff

import "context"

// StaffRepository defines data access methods for staff records.
type StaffRepository interface {
	// Create creates a new staff member
	Create(ctx context.Context, member StaffMember) (StaffMember, error)

	// GetByID retrieves a staff member by ID
	GetByID(ctx context.Context, id string) (StaffMember, error)

	// GetByEmail retrieves a staff member by email
	// Used for login and duplicate-email checks
	GetByEmail(ctx context.Context, email string) (StaffMember, error)

	// List retrieves all staff members ordered by name
	List(ctx context.Context) ([]StaffMember, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// Delete removes a staff member; attendance records, break intervals and
	// location logs cascade at the storage layer
	Delete(ctx context.Context, id string) error

	// CountAdmins returns the number of admin accounts
	CountAdmins(ctx context.Context) (int, error)
}
