package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/service"
)

type InventoryHandler struct {
	invSvc service.InventoryService
}

func NewInventoryHandler(invSvc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{invSvc: invSvc}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.invSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *InventoryHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	bloodType := domain.BloodType(mux.Vars(r)["type"])
	entry, err := h.invSvc.GetByType(r.Context(), bloodType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

type setQuantityRequest struct {
	Quantity *int32 `json:"quantity" validate:"required"`
}

func (h *InventoryHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	bloodType := domain.BloodType(mux.Vars(r)["type"])

	var req setQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.invSvc.SetQuantity(r.Context(), bloodType, *req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

type adjustQuantityRequest struct {
	Delta int32 `json:"delta" validate:"required"`
}

func (h *InventoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	bloodType := domain.BloodType(mux.Vars(r)["type"])

	var req adjustQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.invSvc.AdjustQuantity(r.Context(), bloodType, req.Delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
