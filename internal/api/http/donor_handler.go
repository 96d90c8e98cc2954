package http

import (
	"net/http"

	"bloodbank-backend/internal/service"
)

// DonorHandler serves donor-facing appointment and history endpoints.
type DonorHandler struct {
	campSvc service.CampService
}

func NewDonorHandler(campSvc service.CampService) *DonorHandler {
	return &DonorHandler{campSvc: campSvc}
}

type bookAppointmentRequest struct {
	CampID   int32  `json:"camp_id" validate:"required,gte=1"`
	TimeSlot string `json:"time_slot" validate:"required"`
}

func (h *DonorHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req bookAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := identityFromContext(r.Context())
	appt, err := h.campSvc.BookAppointment(r.Context(), identity.UserID, req.CampID, req.TimeSlot)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

func (h *DonorHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	identity := identityFromContext(r.Context())
	appt, err := h.campSvc.CancelAppointment(r.Context(), identity.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func (h *DonorHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	appts, err := h.campSvc.ListAppointmentsByDonor(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *DonorHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	records, err := h.campSvc.ListDonationsByDonor(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
