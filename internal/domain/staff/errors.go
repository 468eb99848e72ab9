package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound          = errors.New("staff member not found")
	ErrEmailExists            = errors.New("email already exists")
	ErrInvalidRole            = errors.New("role must be either staff or admin")
	ErrCannotDeleteSelf       = errors.New("you cannot delete your own account")
	ErrPasswordMismatch       = errors.New("current password is incorrect")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
