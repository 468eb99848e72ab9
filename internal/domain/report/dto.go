package report

import (
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/pkg/validator"
)

// Row is one attendance record joined with its staff member and open-break
// state, as read back for a daily report.
type Row struct {
	AttendanceID      string
	StaffID           string
	StaffName         string
	CheckInTime       *time.Time
	CheckOutTime      *time.Time
	IsLate            bool
	LateReason        *string
	TotalBreakMinutes int
	OnBreak           bool
	BreakType         *string
	BreakStart        *time.Time
}

type DailyReportRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportRow struct {
	AttendanceID      string  `json:"attendance_id"`
	StaffID           string  `json:"staff_id"`
	StaffName         string  `json:"staff_name"`
	CheckInTime       *string `json:"check_in_time,omitempty"`
	CheckOutTime      *string `json:"check_out_time,omitempty"`
	Duration          string  `json:"duration"`
	IsLate            bool    `json:"is_late"`
	LateReason        *string `json:"late_reason,omitempty"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	OnBreak           bool    `json:"on_break"`
	BreakType         *string `json:"break_type,omitempty"`
	BreakStart        *string `json:"break_start,omitempty"`
}

type DailyReportResponse struct {
	Date string      `json:"date"`
	Rows []ReportRow `json:"rows"`
}

// Stats summarizes a staff member's recent attendance window.
type Stats struct {
	TotalDays        int     `json:"total_days"`
	OnTimeDays       int     `json:"on_time_days"`
	LateDays         int     `json:"late_days"`
	OnTimePercentage float64 `json:"on_time_percentage"`
	LatePercentage   float64 `json:"late_percentage"`
	AvgBreakMinutes  float64 `json:"avg_break_minutes"`
}

// LateCheckIn is one late arrival shown on the admin dashboard.
type LateCheckIn struct {
	StaffName   string     `json:"staff_name"`
	CheckInTime *time.Time `json:"check_in_time"`
	LateReason  *string    `json:"late_reason,omitempty"`
}

// LocationEntry is one check-in's client metadata for the admin location
// history view.
type LocationEntry struct {
	StaffName   string     `json:"staff_name"`
	CheckInTime *time.Time `json:"check_in_time"`
	IPAddress   string     `json:"ip_address"`
	UserAgent   string     `json:"user_agent"`
	IsMobile    bool       `json:"is_mobile"`
	CreatedAt   time.Time  `json:"created_at"`
}
