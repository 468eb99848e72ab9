package staff

import (
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/pkg/validator"
)

type Role string

const (
	RoleStaff Role = "staff" // Regular staff member
	RoleAdmin Role = "admin" // Can manage staff and view reports
)

type StaffMember struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin checks if the staff member has admin privileges
func (s *StaffMember) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return validator.IsInSlice(string(r), []string{string(RoleStaff), string(RoleAdmin)})
}
