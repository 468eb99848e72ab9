package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
	"github.com/staffdesk/checkin-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	attendance.BreakRepository
	attendance.LocationRepository

	loc           *time.Location
	thresholdHour int
	thresholdMin  int

	now    func() time.Time
	withTx func(ctx context.Context, db *database.DB, fn func(pgx.Tx) error) error
}

func NewAttendanceService(db *database.DB, repo attendance.Repository, breakRepo attendance.BreakRepository, locationRepo attendance.LocationRepository, loc *time.Location, lateThreshold string) (attendance.Service, error) {
	threshold, err := time.Parse("15:04", lateThreshold)
	if err != nil {
		return nil, fmt.Errorf("invalid late threshold %q: %w", lateThreshold, err)
	}

	return &AttendanceServiceImpl{
		db:                 db,
		Repository:         repo,
		BreakRepository:    breakRepo,
		LocationRepository: locationRepo,
		loc:                loc,
		thresholdHour:      threshold.Hour(),
		thresholdMin:       threshold.Minute(),
		now:                time.Now,
		withTx:             postgresql.WithTransaction,
	}, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toRecordResponse(record attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:                record.ID,
		StaffID:           record.StaffID,
		Date:              record.Date,
		CheckInTime:       timePtrToString(record.CheckInTime),
		CheckOutTime:      timePtrToString(record.CheckOutTime),
		IsLate:            record.IsLate,
		LateReason:        record.LateReason,
		TotalBreakMinutes: record.TotalBreakMinutes,
	}
	if record.StaffName != nil {
		resp.StaffName = *record.StaffName
	}
	return resp
}

func toBreakResponse(interval attendance.BreakInterval) attendance.BreakResponse {
	resp := attendance.BreakResponse{
		ID:           interval.ID,
		AttendanceID: interval.AttendanceID,
		BreakType:    string(interval.BreakType),
		BreakStart:   interval.BreakStart.Format("2006-01-02 15:04:05"),
		BreakEnd:     timePtrToString(interval.BreakEnd),
	}
	if interval.BreakEnd != nil {
		minutes := interval.DurationMinutes()
		resp.DurationMinutes = &minutes
	}
	return resp
}

// targetStaffID resolves the staff member an operation acts on. Admins may
// act on behalf of someone else; everyone else only on themselves.
func targetStaffID(actx auth.Context, requested string) (string, error) {
	if requested == "" || requested == actx.StaffID {
		return actx.StaffID, nil
	}
	if !actx.IsAdmin() {
		return "", attendance.ErrUnauthorized
	}
	return requested, nil
}

// isLate reports whether a local check-in time falls after the lateness
// threshold on its own calendar day.
func (a *AttendanceServiceImpl) isLate(nowLocal time.Time) bool {
	threshold := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), a.thresholdHour, a.thresholdMin, 0, 0, nowLocal.Location())
	return nowLocal.After(threshold)
}

// CheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, actx auth.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	staffID, err := targetStaffID(actx, req.StaffID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := a.now().In(a.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	existing, err := a.Repository.GetByStaffAndDate(ctx, staffID, dateLocal)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	late := a.isLate(nowLocal)

	// A late mobile check-in pauses until the caller resubmits with a
	// reason. Nothing is written yet.
	if late && req.Client.IsMobile && (req.LateReason == nil || *req.LateReason == "") {
		return attendance.RecordResponse{}, attendance.ErrLateReasonRequired
	}

	var lateReason *string
	if late {
		lateReason = req.LateReason
	}

	checkIn := nowLocal
	record := attendance.Record{
		StaffID:     staffID,
		Date:        dateLocal,
		CheckInTime: &checkIn,
		IsLate:      late,
		LateReason:  lateReason,
	}

	err = a.withTx(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		record, err = a.Repository.Create(txCtx, record)
		if err != nil {
			if err == attendance.ErrAlreadyCheckedIn {
				return err
			}
			return fmt.Errorf("failed to create attendance record: %w", err)
		}

		_, err = a.LocationRepository.Create(txCtx, attendance.LocationLog{
			AttendanceID: record.ID,
			IPAddress:    req.Client.IPAddress,
			UserAgent:    req.Client.UserAgent,
			IsMobile:     req.Client.IsMobile,
		})
		if err != nil {
			return fmt.Errorf("failed to create location log: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

// SubmitLateReason implements attendance.Service.
func (a *AttendanceServiceImpl) SubmitLateReason(ctx context.Context, actx auth.Context, req attendance.LateReasonRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	reason := req.LateReason
	return a.CheckIn(ctx, actx, attendance.CheckInRequest{
		LateReason: &reason,
		Client:     req.Client,
	})
}

// CheckOut implements attendance.Service.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, actx auth.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	staffID, err := targetStaffID(actx, req.StaffID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := a.now().In(a.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	record, err := a.Repository.GetByStaffAndDate(ctx, staffID, dateLocal)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckedOut() {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	err = a.withTx(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		// An open break is closed and accrued before the day ends, so its
		// time is never lost.
		open, err := a.BreakRepository.GetOpen(txCtx, record.ID)
		if err != nil {
			return fmt.Errorf("failed to get open break: %w", err)
		}
		if open != nil {
			if err := a.BreakRepository.Close(txCtx, open.ID, nowLocal); err != nil {
				return fmt.Errorf("failed to close open break: %w", err)
			}
			minutes := int(nowLocal.Sub(open.BreakStart).Seconds()) / 60
			if err := a.Repository.AddBreakMinutes(txCtx, record.ID, minutes); err != nil {
				return fmt.Errorf("failed to accrue break minutes: %w", err)
			}
			record.TotalBreakMinutes += minutes
		}

		if err := a.Repository.SetCheckOut(txCtx, record.ID, nowLocal); err != nil {
			if err == attendance.ErrAlreadyCheckedOut {
				return err
			}
			return fmt.Errorf("failed to set check-out time: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	checkOut := nowLocal
	record.CheckOutTime = &checkOut
	return toRecordResponse(*record), nil
}

// StartBreak implements attendance.Service.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, actx auth.Context, req attendance.StartBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	nowLocal := a.now().In(a.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	record, err := a.Repository.GetByStaffAndDate(ctx, actx.StaffID, dateLocal)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.BreakResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckedOut() {
		return attendance.BreakResponse{}, attendance.ErrAlreadyCheckedOut
	}

	open, err := a.BreakRepository.GetOpen(ctx, record.ID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to get open break: %w", err)
	}
	if open != nil {
		return attendance.BreakResponse{}, attendance.ErrBreakAlreadyActive
	}

	interval, err := a.BreakRepository.Create(ctx, attendance.BreakInterval{
		AttendanceID: record.ID,
		BreakStart:   nowLocal,
		BreakType:    attendance.BreakType(req.BreakType),
	})
	if err != nil {
		if err == attendance.ErrBreakAlreadyActive {
			return attendance.BreakResponse{}, err
		}
		return attendance.BreakResponse{}, fmt.Errorf("failed to create break interval: %w", err)
	}

	return toBreakResponse(interval), nil
}

// EndBreak implements attendance.Service.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context, actx auth.Context) (attendance.BreakResponse, error) {
	nowLocal := a.now().In(a.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	record, err := a.Repository.GetByStaffAndDate(ctx, actx.StaffID, dateLocal)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.BreakResponse{}, attendance.ErrNotCheckedIn
	}

	open, err := a.BreakRepository.GetOpen(ctx, record.ID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to get open break: %w", err)
	}
	if open == nil {
		return attendance.BreakResponse{}, attendance.ErrNoActiveBreak
	}

	err = a.withTx(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		if err := a.BreakRepository.Close(txCtx, open.ID, nowLocal); err != nil {
			if err == attendance.ErrNoActiveBreak {
				return err
			}
			return fmt.Errorf("failed to close break: %w", err)
		}

		minutes := int(nowLocal.Sub(open.BreakStart).Seconds()) / 60
		if err := a.Repository.AddBreakMinutes(txCtx, record.ID, minutes); err != nil {
			return fmt.Errorf("failed to accrue break minutes: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	end := nowLocal
	open.BreakEnd = &end
	return toBreakResponse(*open), nil
}

// GetToday implements attendance.Service.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, actx auth.Context) (attendance.StatusResponse, error) {
	nowLocal := a.now().In(a.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	record, err := a.Repository.GetByStaffAndDate(ctx, actx.StaffID, dateLocal)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.StatusResponse{
			HasCheckedIn: false,
			CanCheckIn:   true,
		}, nil
	}

	open, err := a.BreakRepository.GetOpen(ctx, record.ID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get open break: %w", err)
	}

	recordResp := toRecordResponse(*record)
	status := attendance.StatusResponse{
		HasCheckedIn: true,
		Record:       &recordResp,
		CanCheckIn:   false,
		CanCheckOut:  !record.CheckedOut(),
	}
	if open != nil {
		breakResp := toBreakResponse(*open)
		status.ActiveBreak = &breakResp
	}

	return status, nil
}

// DeleteRecord implements attendance.Service.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, actx auth.Context, id string) error {
	if !actx.IsAdmin() {
		return attendance.ErrUnauthorized
	}

	if err := a.Repository.Delete(ctx, id); err != nil {
		if err == attendance.ErrRecordNotFound {
			return err
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}
