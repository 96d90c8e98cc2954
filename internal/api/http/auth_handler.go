package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/service"
)

var validate = validator.New()

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role" validate:"required,oneof=donor receiver admin"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Age             int32  `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender          string `json:"gender"`

	BloodType        string `json:"blood_type"`
	Hospital         string `json:"hospital"`
	MedicalCondition string `json:"medical_condition"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type sessionResponse struct {
	User   *domain.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, tokens, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := &domain.User{
		Name:             req.Name,
		Email:            req.Email,
		Role:             domain.Role(req.Role),
		Phone:            req.Phone,
		Address:          req.Address,
		Age:              req.Age,
		Gender:           req.Gender,
		BloodType:        domain.BloodType(req.BloodType),
		Hospital:         req.Hospital,
		MedicalCondition: req.MedicalCondition,
	}

	user, tokens, err := h.authSvc.Register(r.Context(), user, req.Password, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.authSvc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*service.TokenPair{"tokens": tokens})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	user, err := h.authSvc.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Age     int32  `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender  string `json:"gender"`

	BloodType        string `json:"blood_type"`
	Hospital         string `json:"hospital"`
	MedicalCondition string `json:"medical_condition"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := identityFromContext(r.Context())
	existing, err := h.authSvc.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Age = req.Age
	existing.Gender = req.Gender
	existing.BloodType = domain.BloodType(req.BloodType)
	existing.Hospital = req.Hospital
	existing.MedicalCondition = req.MedicalCondition

	updated, err := h.authSvc.UpdateProfile(r.Context(), existing)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
