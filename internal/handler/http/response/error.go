package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/domain/report"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already exists")
	case errors.Is(err, staff.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, staff.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, staff.ErrPasswordMismatch):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, staff.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrLateReasonRequired):
		PreconditionRequired(w, "LATE_REASON_REQUIRED", err.Error())
	case errors.Is(err, attendance.ErrBreakAlreadyActive):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveBreak):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrInvalidBreakType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Report domain errors
	case errors.Is(err, report.ErrNoDataToExport):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
