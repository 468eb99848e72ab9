package attendance

import (
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/pkg/validator"
)

// BreakType classifies a break interval by its nominal length.
type BreakType string

const (
	BreakShort   BreakType = "short"   // 15 minutes nominal
	BreakRegular BreakType = "regular" // 30 minutes nominal
	BreakLunch   BreakType = "lunch"   // 60 minutes nominal
)

// ValidBreakType reports whether t is a known break type.
func ValidBreakType(t BreakType) bool {
	return validator.IsInSlice(string(t), []string{
		string(BreakShort), string(BreakRegular), string(BreakLunch),
	})
}

// Record is one staff member's check-in/out state for one calendar day.
// TotalBreakMinutes only ever grows, and only when a break interval closes.
type Record struct {
	ID                string
	StaffID           string
	Date              string // local calendar day, YYYY-MM-DD
	CheckInTime       *time.Time
	CheckOutTime      *time.Time
	IsLate            bool
	LateReason        *string
	TotalBreakMinutes int

	// DTO / join
	StaffName *string
}

// CheckedOut reports whether the record has reached its terminal state.
func (r *Record) CheckedOut() bool {
	return r.CheckOutTime != nil
}

// BreakInterval is one contiguous break period nested inside a Record.
// At most one interval per record may have a nil BreakEnd.
type BreakInterval struct {
	ID           string
	AttendanceID string
	BreakStart   time.Time
	BreakEnd     *time.Time
	BreakType    BreakType
}

// Open reports whether the interval has not been closed yet.
func (b *BreakInterval) Open() bool {
	return b.BreakEnd == nil
}

// DurationMinutes returns the closed interval's length in whole minutes,
// truncated toward zero. An open interval has no duration yet.
func (b *BreakInterval) DurationMinutes() int {
	if b.BreakEnd == nil {
		return 0
	}
	return int(b.BreakEnd.Sub(b.BreakStart).Seconds()) / 60
}

// LocationLog is best-effort client metadata captured at check-in. It is
// never read for business decisions beyond mobile-routing display.
type LocationLog struct {
	ID           string
	AttendanceID string
	IPAddress    string
	UserAgent    string
	IsMobile     bool
	CreatedAt    time.Time
}
