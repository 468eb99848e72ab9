package auth

// Context carries the authenticated caller's identity into core operations.
// Handlers build it from JWT claims; services never read ambient request
// state themselves.
type Context struct {
	StaffID string
	Name    string
	Role    string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Context) IsAdmin() bool {
	return c.Role == "admin"
}
