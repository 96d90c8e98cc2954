package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/service"
)

type RequestHandler struct {
	reqSvc service.RequestService
}

func NewRequestHandler(reqSvc service.RequestService) *RequestHandler {
	return &RequestHandler{reqSvc: reqSvc}
}

type submitRequestRequest struct {
	BloodType string `json:"blood_type" validate:"required"`
	Units     int32  `json:"units" validate:"required,gte=1"`
	Hospital  string `json:"hospital" validate:"required"`
	Urgency   string `json:"urgency" validate:"required,oneof=Low Medium High Critical"`
	Reason    string `json:"reason" validate:"required"`
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequestRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := identityFromContext(r.Context())
	created, err := h.reqSvc.Submit(r.Context(), identity.UserID,
		domain.BloodType(req.BloodType), req.Units, req.Hospital,
		domain.Urgency(req.Urgency), req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	requests, err := h.reqSvc.ListByReceiver(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.reqSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, err := h.reqSvc.Approve(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, err := h.reqSvc.Reject(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// pathID parses an int32 path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return int32(id), true
}
