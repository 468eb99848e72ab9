package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/domain/report"
	"github.com/staffdesk/checkin-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DailyReport(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	RecentStats(w http.ResponseWriter, r *http.Request)
	LateCheckIns(w http.ResponseWriter, r *http.Request)
	LocationHistory(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
	loc           *time.Location
}

func NewReportHandler(reportService report.Service, loc *time.Location) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		loc:           loc,
	}
}

// dateParam reads the date query parameter, defaulting to today.
func (h *ReportHandlerImpl) dateParam(r *http.Request) string {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.loc).Format("2006-01-02")
	}
	return date
}

// DailyReport implements ReportHandler.
func (h *ReportHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reportResponse, err := h.reportService.DailyReport(r.Context(), actx, report.DailyReportRequest{Date: h.dateParam(r)})
	if err != nil {
		slog.Error("DailyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reportResponse)
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, filename, err := h.reportService.ExportCSV(r.Context(), actx, report.DailyReportRequest{Date: h.dateParam(r)})
	if err != nil {
		slog.Error("ExportCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.CSV(w, filename, data)
}

// RecentStats implements ReportHandler.
func (h *ReportHandlerImpl) RecentStats(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	window, _ := strconv.Atoi(r.URL.Query().Get("window"))

	stats, err := h.reportService.RecentStats(r.Context(), actx, window)
	if err != nil {
		slog.Error("RecentStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// LateCheckIns implements ReportHandler.
func (h *ReportHandlerImpl) LateCheckIns(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.reportService.LateCheckIns(r.Context(), actx, report.DailyReportRequest{Date: h.dateParam(r)})
	if err != nil {
		slog.Error("LateCheckIns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// LocationHistory implements ReportHandler.
func (h *ReportHandlerImpl) LocationHistory(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.reportService.LocationHistory(r.Context(), actx, report.DailyReportRequest{Date: h.dateParam(r)})
	if err != nil {
		slog.Error("LocationHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
