package http

import (
	"net/http"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/service"
)

type CampHandler struct {
	campSvc service.CampService
}

func NewCampHandler(campSvc service.CampService) *CampHandler {
	return &CampHandler{campSvc: campSvc}
}

type campRequest struct {
	Name         string `json:"name" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required"`
	Organizer    string `json:"organizer"`
	ContactPhone string `json:"contact_phone"`
	Slots        int32  `json:"slots" validate:"omitempty,gte=0"`
	Description  string `json:"description"`
}

func (h *CampHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req campRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camp, err := h.campSvc.CreateCamp(r.Context(), &domain.DonationCamp{
		Name:         req.Name,
		Location:     req.Location,
		Date:         req.Date,
		Time:         req.Time,
		Organizer:    req.Organizer,
		ContactPhone: req.ContactPhone,
		Slots:        req.Slots,
		Description:  req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, camp)
}

func (h *CampHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req campRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camp, err := h.campSvc.UpdateCamp(r.Context(), &domain.DonationCamp{
		ID:           id,
		Name:         req.Name,
		Location:     req.Location,
		Date:         req.Date,
		Time:         req.Time,
		Organizer:    req.Organizer,
		ContactPhone: req.ContactPhone,
		Slots:        req.Slots,
		Description:  req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camp)
}

func (h *CampHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		camps []domain.DonationCamp
		err   error
	)
	if r.URL.Query().Get("status") == string(domain.CampStatusUpcoming) {
		camps, err = h.campSvc.ListUpcomingCamps(r.Context())
	} else {
		camps, err = h.campSvc.ListCamps(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camps)
}

func (h *CampHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	camp, err := h.campSvc.GetCamp(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, camp)
}

func (h *CampHandler) TimeSlots(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	slots, err := h.campSvc.CampTimeSlots(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"slots": slots})
}
