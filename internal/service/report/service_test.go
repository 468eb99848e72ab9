package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/domain/report"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	rows      []report.Row
	late      []report.LateCheckIn
	locations []report.LocationEntry
}

func (f *fakeReportRepo) GetDailyRows(ctx context.Context, date string) ([]report.Row, error) {
	return f.rows, nil
}

func (f *fakeReportRepo) GetLateCheckIns(ctx context.Context, date string) ([]report.LateCheckIn, error) {
	return f.late, nil
}

func (f *fakeReportRepo) GetLocationHistory(ctx context.Context, date string) ([]report.LocationEntry, error) {
	return f.locations, nil
}

type fakeRecentRepo struct {
	records []attendance.Record
}

func (f *fakeRecentRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	return record, nil
}

func (f *fakeRecentRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecentRepo) GetByStaffAndDate(ctx context.Context, staffID string, date string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecentRepo) GetRecent(ctx context.Context, staffID string, limit int) ([]attendance.Record, error) {
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeRecentRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	return nil
}

func (f *fakeRecentRepo) AddBreakMinutes(ctx context.Context, id string, minutes int) error {
	return nil
}

func (f *fakeRecentRepo) Delete(ctx context.Context, id string) error {
	return nil
}

var adminCtx = auth.Context{StaffID: "admin-1", Name: "Bob Admin", Role: "admin"}
var staffCtx = auth.Context{StaffID: "staff-1", Name: "Alice Staff", Role: "staff"}

func ts(hour, min, sec int) *time.Time {
	t := time.Date(2026, 8, 28, hour, min, sec, 0, time.UTC)
	return &t
}

func TestDailyReport_AdminOnly(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeRecentRepo{})

	_, err := svc.DailyReport(context.Background(), staffCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.ErrorIs(t, err, staff.ErrAdminPrivilegeRequired)
}

func TestDailyReport_EmptyDay(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeRecentRepo{})

	resp, err := svc.DailyReport(context.Background(), adminCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", resp.Date)
	assert.Empty(t, resp.Rows)
}

func TestDailyReport_InvalidDate(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeRecentRepo{})

	_, err := svc.DailyReport(context.Background(), adminCtx, report.DailyReportRequest{Date: "28-08-2026"})
	require.Error(t, err)
}

func TestDailyReport_DurationAndStatus(t *testing.T) {
	repo := &fakeReportRepo{rows: []report.Row{
		{AttendanceID: "rec-1", StaffName: "Alice", CheckInTime: ts(9, 0, 0), CheckOutTime: ts(17, 30, 0)},
		{AttendanceID: "rec-2", StaffName: "Bob", CheckInTime: ts(8, 45, 0)},
	}}
	svc := NewReportService(repo, &fakeRecentRepo{})

	resp, err := svc.DailyReport(context.Background(), adminCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	assert.Equal(t, "8h 30m", resp.Rows[0].Duration)
	assert.Equal(t, "N/A", resp.Rows[1].Duration)
}

func TestRecentStats_Percentages(t *testing.T) {
	repo := &fakeRecentRepo{records: []attendance.Record{
		{IsLate: false, TotalBreakMinutes: 30},
		{IsLate: true, TotalBreakMinutes: 45},
		{IsLate: false, TotalBreakMinutes: 20},
		{IsLate: true, TotalBreakMinutes: 0},
		{IsLate: false, TotalBreakMinutes: 15},
	}}
	svc := NewReportService(&fakeReportRepo{}, repo)

	stats, err := svc.RecentStats(context.Background(), staffCtx, 0)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalDays)
	assert.Equal(t, 3, stats.OnTimeDays)
	assert.Equal(t, 2, stats.LateDays)
	assert.InDelta(t, 60.0, stats.OnTimePercentage, 0.001)
	assert.InDelta(t, 40.0, stats.LatePercentage, 0.001)
	// (30+45+20+0+15)/5 = 22.0
	assert.InDelta(t, 22.0, stats.AvgBreakMinutes, 0.001)
}

func TestRecentStats_AvgRoundedToOneDecimal(t *testing.T) {
	repo := &fakeRecentRepo{records: []attendance.Record{
		{TotalBreakMinutes: 10},
		{TotalBreakMinutes: 11},
		{TotalBreakMinutes: 12},
	}}
	svc := NewReportService(&fakeReportRepo{}, repo)

	stats, err := svc.RecentStats(context.Background(), staffCtx, 3)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, stats.AvgBreakMinutes, 0.001)

	repo.records = append(repo.records, attendance.Record{TotalBreakMinutes: 14})
	stats, err = svc.RecentStats(context.Background(), staffCtx, 4)
	require.NoError(t, err)
	// 47/4 = 11.75 rounds to 11.8
	assert.InDelta(t, 11.8, stats.AvgBreakMinutes, 0.001)
}

func TestRecentStats_NoHistory(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeRecentRepo{})

	stats, err := svc.RecentStats(context.Background(), staffCtx, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalDays)
	assert.Zero(t, stats.OnTimePercentage)
	assert.Zero(t, stats.LatePercentage)
	assert.Zero(t, stats.AvgBreakMinutes)
}

func TestExportCSV_HeaderAndRows(t *testing.T) {
	reason := "overslept"
	repo := &fakeReportRepo{rows: []report.Row{
		{
			StaffName:         "Alice",
			CheckInTime:       ts(9, 0, 0),
			CheckOutTime:      ts(17, 30, 0),
			IsLate:            false,
			TotalBreakMinutes: 30,
		},
		{
			StaffName:         "Bob",
			CheckInTime:       ts(9, 42, 10),
			IsLate:            true,
			LateReason:        &reason,
			TotalBreakMinutes: 0,
		},
	}}
	svc := NewReportService(repo, &fakeRecentRepo{})

	data, filename, err := svc.ExportCSV(context.Background(), adminCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, "check_in_report_2026-08-28.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Staff Name,Check-In Time,Check-Out Time,Duration,Status,Late,Break Time (min),Date", lines[0])
	assert.Equal(t, "Alice,09:00:00,17:30:00,8h 30m,Completed,No,30,2026-08-28", lines[1])
	assert.Equal(t, "Bob,09:42:10,N/A,N/A,Checked In,Yes,0,2026-08-28", lines[2])
}

func TestExportCSV_EmptyDay(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeRecentRepo{})

	_, _, err := svc.ExportCSV(context.Background(), adminCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.ErrorIs(t, err, report.ErrNoDataToExport)
}

func TestExportCSV_AdminOnly(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, &fakeRecentRepo{})

	_, _, err := svc.ExportCSV(context.Background(), staffCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.ErrorIs(t, err, staff.ErrAdminPrivilegeRequired)
}

func TestLateCheckIns_AdminOnly(t *testing.T) {
	repo := &fakeReportRepo{late: []report.LateCheckIn{
		{StaffName: "Bob", CheckInTime: ts(9, 42, 10)},
	}}
	svc := NewReportService(repo, &fakeRecentRepo{})

	_, err := svc.LateCheckIns(context.Background(), staffCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.ErrorIs(t, err, staff.ErrAdminPrivilegeRequired)

	entries, err := svc.LateCheckIns(context.Background(), adminCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bob", entries[0].StaffName)
}

func TestLocationHistory_AdminOnly(t *testing.T) {
	repo := &fakeReportRepo{locations: []report.LocationEntry{
		{StaffName: "Alice", IPAddress: "10.0.0.5", IsMobile: true},
	}}
	svc := NewReportService(repo, &fakeRecentRepo{})

	_, err := svc.LocationHistory(context.Background(), staffCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.ErrorIs(t, err, staff.ErrAdminPrivilegeRequired)

	entries, err := svc.LocationHistory(context.Background(), adminCtx, report.DailyReportRequest{Date: "2026-08-28"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsMobile)
}
