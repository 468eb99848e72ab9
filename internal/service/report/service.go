package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/domain/report"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
)

// DefaultStatsWindow is how many recent attendance days feed the dashboard
// statistics.
const DefaultStatsWindow = 5

var csvHeader = []string{"Staff Name", "Check-In Time", "Check-Out Time", "Duration", "Status", "Late", "Break Time (min)", "Date"}

type ReportServiceImpl struct {
	reportRepo     report.Repository
	attendanceRepo attendance.Repository
}

func NewReportService(reportRepo report.Repository, attendanceRepo attendance.Repository) report.Service {
	return &ReportServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
	}
}

// formatDuration renders a completed day's length as "Xh Ym".
func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// rowStatus classifies a report row the way the dashboard shows it.
func rowStatus(row report.Row) string {
	switch {
	case row.CheckInTime != nil && row.CheckOutTime != nil:
		return "Completed"
	case row.CheckInTime != nil:
		return "Checked In"
	default:
		return "In Progress"
	}
}

func timePtrToClockString(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("15:04:05")
}

func toReportRow(row report.Row) report.ReportRow {
	resp := report.ReportRow{
		AttendanceID:      row.AttendanceID,
		StaffID:           row.StaffID,
		StaffName:         row.StaffName,
		IsLate:            row.IsLate,
		LateReason:        row.LateReason,
		TotalBreakMinutes: row.TotalBreakMinutes,
		OnBreak:           row.OnBreak,
		BreakType:         row.BreakType,
	}

	if row.CheckInTime != nil {
		s := row.CheckInTime.Format("2006-01-02 15:04:05")
		resp.CheckInTime = &s
	}
	if row.CheckOutTime != nil {
		s := row.CheckOutTime.Format("2006-01-02 15:04:05")
		resp.CheckOutTime = &s
	}
	if row.BreakStart != nil {
		s := row.BreakStart.Format("2006-01-02 15:04:05")
		resp.BreakStart = &s
	}

	resp.Duration = "N/A"
	if row.CheckInTime != nil && row.CheckOutTime != nil {
		resp.Duration = formatDuration(row.CheckOutTime.Sub(*row.CheckInTime))
	}

	return resp
}

// DailyReport implements report.Service.
func (s *ReportServiceImpl) DailyReport(ctx context.Context, actx auth.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	if !actx.IsAdmin() {
		return report.DailyReportResponse{}, staff.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	rows, err := s.reportRepo.GetDailyRows(ctx, req.Date)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to get daily report rows: %w", err)
	}

	reportRows := make([]report.ReportRow, 0, len(rows))
	for _, row := range rows {
		reportRows = append(reportRows, toReportRow(row))
	}

	return report.DailyReportResponse{
		Date: req.Date,
		Rows: reportRows,
	}, nil
}

// RecentStats implements report.Service.
func (s *ReportServiceImpl) RecentStats(ctx context.Context, actx auth.Context, window int) (report.Stats, error) {
	if window <= 0 {
		window = DefaultStatsWindow
	}

	records, err := s.attendanceRepo.GetRecent(ctx, actx.StaffID, window)
	if err != nil {
		return report.Stats{}, fmt.Errorf("failed to get recent attendance: %w", err)
	}

	stats := report.Stats{TotalDays: len(records)}
	if stats.TotalDays == 0 {
		return stats, nil
	}

	totalBreak := 0
	for _, record := range records {
		if record.IsLate {
			stats.LateDays++
		} else {
			stats.OnTimeDays++
		}
		totalBreak += record.TotalBreakMinutes
	}

	stats.OnTimePercentage = float64(stats.OnTimeDays) / float64(stats.TotalDays) * 100
	stats.LatePercentage = float64(stats.LateDays) / float64(stats.TotalDays) * 100
	stats.AvgBreakMinutes = math.Round(float64(totalBreak)/float64(stats.TotalDays)*10) / 10

	return stats, nil
}

// ExportCSV implements report.Service.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, actx auth.Context, req report.DailyReportRequest) ([]byte, string, error) {
	if !actx.IsAdmin() {
		return nil, "", staff.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	rows, err := s.reportRepo.GetDailyRows(ctx, req.Date)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get daily report rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, "", report.ErrNoDataToExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		duration := "N/A"
		if row.CheckInTime != nil && row.CheckOutTime != nil {
			duration = formatDuration(row.CheckOutTime.Sub(*row.CheckInTime))
		}

		late := "No"
		if row.IsLate {
			late = "Yes"
		}

		record := []string{
			row.StaffName,
			timePtrToClockString(row.CheckInTime),
			timePtrToClockString(row.CheckOutTime),
			duration,
			rowStatus(row),
			late,
			strconv.Itoa(row.TotalBreakMinutes),
			req.Date,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("check_in_report_%s.csv", req.Date)
	return buf.Bytes(), filename, nil
}

// LateCheckIns implements report.Service.
func (s *ReportServiceImpl) LateCheckIns(ctx context.Context, actx auth.Context, req report.DailyReportRequest) ([]report.LateCheckIn, error) {
	if !actx.IsAdmin() {
		return nil, staff.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.reportRepo.GetLateCheckIns(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to get late check-ins: %w", err)
	}

	return entries, nil
}

// LocationHistory implements report.Service.
func (s *ReportServiceImpl) LocationHistory(ctx context.Context, actx auth.Context, req report.DailyReportRequest) ([]report.LocationEntry, error) {
	if !actx.IsAdmin() {
		return nil, staff.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.reportRepo.GetLocationHistory(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}

	return entries, nil
}
