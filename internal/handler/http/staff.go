package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/staffdesk/checkin-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{
		staffService: staffService,
	}
}

// Register implements StaffHandler. The route is public; an anonymous caller
// always registers as regular staff.
func (h *StaffHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq staff.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actx, _ := authContext(r)

	staffResponse, err := h.staffService.Register(r.Context(), actx, registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff registered successfully", "staff_id", staffResponse.ID)
	response.Created(w, "Registration successful", staffResponse)
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	listResponse, err := h.staffService.List(r.Context(), actx)
	if err != nil {
		slog.Error("List staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	staffResponse, err := h.staffService.Get(r.Context(), actx, id)
	if err != nil {
		slog.Error("Get staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staffResponse)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.staffService.Delete(r.Context(), actx, id); err != nil {
		slog.Error("Delete staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff deleted successfully", "staff_id", id)
	response.SuccessWithMessage(w, "Staff member deleted", nil)
}

// ChangePassword implements StaffHandler.
func (h *StaffHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actx, err := authContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var changeReq staff.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.staffService.ChangePassword(r.Context(), actx, changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
