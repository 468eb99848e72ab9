package attendance

import (
	"github.com/staffdesk/checkin-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClientInfo is best-effort metadata extracted from the request by the
// handler layer.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	IsMobile  bool
}

type CheckInRequest struct {
	// StaffID lets admins check in on behalf of another staff member; it is
	// ignored for non-admin callers.
	StaffID    string  `json:"staff_id,omitempty"`
	LateReason *string `json:"late_reason,omitempty"`

	Client ClientInfo `json:"-"`
}

type LateReasonRequest struct {
	LateReason string `json:"late_reason"`

	Client ClientInfo `json:"-"`
}

func (r *LateReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LateReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "late_reason",
			Message: "late_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	// StaffID lets admins check out on behalf of another staff member.
	StaffID string `json:"staff_id,omitempty"`
}

type StartBreakRequest struct {
	BreakType string `json:"break_type"`
}

func (r *StartBreakRequest) Validate() error {
	if r.BreakType == "" {
		r.BreakType = string(BreakRegular)
	}
	if !ValidBreakType(BreakType(r.BreakType)) {
		return ErrInvalidBreakType
	}

	return nil
}

type RecordResponse struct {
	ID                string  `json:"id"`
	StaffID           string  `json:"staff_id"`
	StaffName         string  `json:"staff_name,omitempty"`
	Date              string  `json:"date"`
	CheckInTime       *string `json:"check_in_time,omitempty"`
	CheckOutTime      *string `json:"check_out_time,omitempty"`
	IsLate            bool    `json:"is_late"`
	LateReason        *string `json:"late_reason,omitempty"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
}

type BreakResponse struct {
	ID              string  `json:"id"`
	AttendanceID    string  `json:"attendance_id"`
	BreakType       string  `json:"break_type"`
	BreakStart      string  `json:"break_start"`
	BreakEnd        *string `json:"break_end,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// StatusResponse describes today's state for the dashboard and mobile views.
type StatusResponse struct {
	HasCheckedIn bool            `json:"has_checked_in"`
	Record       *RecordResponse `json:"record,omitempty"`
	ActiveBreak  *BreakResponse  `json:"active_break,omitempty"`
	CanCheckIn   bool            `json:"can_check_in"`
	CanCheckOut  bool            `json:"can_check_out"`
}
