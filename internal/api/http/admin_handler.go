package http

import (
	"net/http"

	"bloodbank-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
	campSvc  service.CampService
}

func NewAdminHandler(adminSvc service.AdminService, campSvc service.CampService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, campSvc: campSvc}
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.GetDashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.adminSvc.ListDonors(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, donors)
}

func (h *AdminHandler) ListReceivers(w http.ResponseWriter, r *http.Request) {
	receivers, err := h.adminSvc.ListReceivers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receivers)
}

type recordDonationRequest struct {
	AppointmentID int32  `json:"appointment_id" validate:"required,gte=1"`
	Amount        string `json:"amount"`
	Center        string `json:"center"`
}

func (h *AdminHandler) RecordDonation(w http.ResponseWriter, r *http.Request) {
	var req recordDonationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.campSvc.RecordDonation(r.Context(), req.AppointmentID, req.Amount, req.Center)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}
