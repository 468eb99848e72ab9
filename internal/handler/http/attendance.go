package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/attendance"
	"github.com/staffdesk/checkin-backend-go/internal/handler/http/response"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/clientinfo"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	SubmitLateReason(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func clientInfoFromRequest(r *http.Request) attendance.ClientInfo {
	info := clientinfo.FromRequest(r)
	return attendance.ClientInfo{
		IPAddress: info.IPAddress,
		UserAgent: info.UserAgent,
		IsMobile:  info.IsMobile,
	}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var checkInReq attendance.CheckInRequest
	// An empty body is a plain self check-in.
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		checkInReq = attendance.CheckInRequest{}
	}
	checkInReq.Client = clientInfoFromRequest(r)

	recordResponse, err := h.attendanceService.CheckIn(r.Context(), actx, checkInReq)
	if err != nil {
		if err != attendance.ErrLateReasonRequired {
			slog.Error("CheckIn service error", "error", err)
		}
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff checked in", "staff_id", recordResponse.StaffID, "late", recordResponse.IsLate)
	response.Created(w, "Checked in successfully", recordResponse)
}

// SubmitLateReason implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitLateReason(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var lateReasonReq attendance.LateReasonRequest
	if err := json.NewDecoder(r.Body).Decode(&lateReasonReq); err != nil {
		slog.Error("SubmitLateReason decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	lateReasonReq.Client = clientInfoFromRequest(r)

	recordResponse, err := h.attendanceService.SubmitLateReason(r.Context(), actx, lateReasonReq)
	if err != nil {
		slog.Error("SubmitLateReason service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff checked in with late reason", "staff_id", recordResponse.StaffID)
	response.Created(w, "Checked in successfully", recordResponse)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var checkOutReq attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		checkOutReq = attendance.CheckOutRequest{}
	}

	recordResponse, err := h.attendanceService.CheckOut(r.Context(), actx, checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff checked out", "staff_id", recordResponse.StaffID)
	response.SuccessWithMessage(w, "Checked out successfully", recordResponse)
}

// StartBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var startBreakReq attendance.StartBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&startBreakReq); err != nil {
		startBreakReq = attendance.StartBreakRequest{}
	}

	breakResponse, err := h.attendanceService.StartBreak(r.Context(), actx, startBreakReq)
	if err != nil {
		slog.Error("StartBreak service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break started", "staff_id", actx.StaffID, "break_type", breakResponse.BreakType)
	response.Created(w, "Break started", breakResponse)
}

// EndBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	breakResponse, err := h.attendanceService.EndBreak(r.Context(), actx)
	if err != nil {
		slog.Error("EndBreak service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break ended", "staff_id", actx.StaffID, "break_type", breakResponse.BreakType)
	response.SuccessWithMessage(w, "Break ended", breakResponse)
}

// GetToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	statusResponse, err := h.attendanceService.GetToday(r.Context(), actx)
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, statusResponse)
}

// DeleteRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteRecord(r.Context(), actx, id); err != nil {
		slog.Error("DeleteRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance record deleted", "record_id", id)
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
