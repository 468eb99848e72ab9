package attendance

import (
	"context"

	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
)

// Service defines the attendance state machine: NONE -> CHECKED_IN ->
// [ON_BREAK <-> CHECKED_IN]* -> CHECKED_OUT, with a late-mobile check-in
// suspending on ErrLateReasonRequired until a reason is supplied.
type Service interface {
	// CheckIn opens today's attendance record. A late check-in from a mobile
	// client without a reason returns ErrLateReasonRequired and creates
	// nothing.
	CheckIn(ctx context.Context, actx auth.Context, req CheckInRequest) (RecordResponse, error)

	// SubmitLateReason completes a suspended late mobile check-in.
	SubmitLateReason(ctx context.Context, actx auth.Context, req LateReasonRequest) (RecordResponse, error)

	// CheckOut closes today's record, closing and accruing any open break
	// first.
	CheckOut(ctx context.Context, actx auth.Context, req CheckOutRequest) (RecordResponse, error)

	// StartBreak opens a break interval on today's record.
	StartBreak(ctx context.Context, actx auth.Context, req StartBreakRequest) (BreakResponse, error)

	// EndBreak closes the open break interval and accrues its duration.
	EndBreak(ctx context.Context, actx auth.Context) (BreakResponse, error)

	// GetToday retrieves today's record and break state for the caller.
	GetToday(ctx context.Context, actx auth.Context) (StatusResponse, error)

	// DeleteRecord removes an attendance record (admin only).
	DeleteRecord(ctx context.Context, actx auth.Context, id string) error
}
