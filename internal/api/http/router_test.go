package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "bloodbank-backend/internal/api/http"
	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository/memory"
	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"
)

// newTestRouter assembles the router against a freshly seeded in-memory
// store, mirroring the wiring in cmd/server.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background()))

	tokens := security.NewTokenManager("router-test-secret-0123456789abcdef", 15, 1440)
	emailSvc := service.NewEmailService(config.EmailConfig{})
	invSvc := service.NewInventoryService(store.InventoryRepository, store.UserRepository, store.NotificationRepository)

	svcs := httpapi.Services{
		Auth:      service.NewAuthService(store.UserRepository, tokens),
		Inventory: invSvc,
		Request: service.NewRequestService(store.RequestRepository, store.UserRepository, invSvc,
			store.NotificationRepository, emailSvc),
		Camp: service.NewCampService(store.CampRepository, store.AppointmentRepository,
			store.DonationRepository, store.UserRepository, invSvc,
			store.NotificationRepository, emailSvc),
		Admin: service.NewAdminService(store.UserRepository, store.InventoryRepository,
			store.RequestRepository, store.CampRepository),
		Notification: service.NewNotificationService(store.NotificationRepository),
	}
	return httpapi.NewRouter(svcs, tokens)
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

// loginAs returns an access token for one of the seeded accounts.
func loginAs(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"email": email, "password": "password"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tokens struct {
			AccessToken string `json:"access_token"`
		} `json:"tokens"`
	}
	decodeInto(t, rec, &resp)
	require.NotEmpty(t, resp.Tokens.AccessToken)
	return resp.Tokens.AccessToken
}

type gateError struct {
	Error    string `json:"error"`
	Location string `json:"location"`
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(t)
	rec := doRequest(t, h, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	h := newTestRouter(t)

	t.Run("Valid Credentials", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "admin@example.com", "password": "password"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			User struct {
				Role domain.Role `json:"role"`
			} `json:"user"`
		}
		decodeInto(t, rec, &resp)
		assert.Equal(t, domain.RoleAdmin, resp.User.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "admin@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "",
			map[string]string{"email": "admin@example.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_GateRendering(t *testing.T) {
	h := newTestRouter(t)

	t.Run("Anonymous Redirected To Login", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/admin/dashboard", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body gateError
		decodeInto(t, rec, &body)
		assert.Equal(t, "/login", body.Location)
	})

	t.Run("Garbage Token Treated As Anonymous", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/admin/dashboard", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong Role Redirected Home", func(t *testing.T) {
		donorToken := loginAs(t, h, "donor@example.com")
		rec := doRequest(t, h, http.MethodGet, "/api/v1/admin/dashboard", donorToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body gateError
		decodeInto(t, rec, &body)
		assert.Equal(t, "/donor/dashboard", body.Location)
	})

	t.Run("Matching Role Allowed", func(t *testing.T) {
		adminToken := loginAs(t, h, "admin@example.com")
		rec := doRequest(t, h, http.MethodGet, "/api/v1/admin/dashboard", adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AdminApprovalFlow(t *testing.T) {
	h := newTestRouter(t)
	adminToken := loginAs(t, h, "admin@example.com")

	// Seeded pending request 2: 3 units of O-, inventory at 20.
	rec := doRequest(t, h, http.MethodPost, "/api/v1/admin/requests/2/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var approved domain.BloodRequest
	decodeInto(t, rec, &approved)
	assert.Equal(t, domain.RequestStatusApproved, approved.Status)
	assert.NotNil(t, approved.DecidedOn)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/inventory/O-", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry domain.InventoryEntry
	decodeInto(t, rec, &entry)
	assert.Equal(t, int32(17), entry.Quantity)
	assert.Equal(t, domain.StockStatusAvailable, entry.Status)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/admin/requests/2/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/admin/requests/999/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ReceiverSubmit(t *testing.T) {
	h := newTestRouter(t)
	receiverToken := loginAs(t, h, "receiver@example.com")

	payload := map[string]any{
		"blood_type": "AB-",
		"units":      2,
		"hospital":   "General Hospital",
		"urgency":    "High",
		"reason":     "Scheduled surgery",
	}

	rec := doRequest(t, h, http.MethodPost, "/api/v1/receiver/requests", receiverToken, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.BloodRequest
	decodeInto(t, rec, &created)
	assert.Equal(t, domain.RequestStatusPending, created.Status)
	assert.Equal(t, "Sarah Receiver", created.ReceiverName)
	assert.NotEmpty(t, created.Reference)

	t.Run("Donor Cannot Submit", func(t *testing.T) {
		donorToken := loginAs(t, h, "donor@example.com")
		rec := doRequest(t, h, http.MethodPost, "/api/v1/receiver/requests", donorToken, payload)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/v1/receiver/requests", receiverToken,
			map[string]any{"blood_type": "AB-", "units": 0, "hospital": "", "urgency": "High", "reason": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_DonorBooking(t *testing.T) {
	h := newTestRouter(t)
	donorToken := loginAs(t, h, "donor@example.com")

	rec := doRequest(t, h, http.MethodGet, "/api/v1/camps/1/slots", donorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var slotsResp struct {
		Slots []string `json:"slots"`
	}
	decodeInto(t, rec, &slotsResp)
	require.Len(t, slotsResp.Slots, 16)
	assert.Equal(t, "9:00 AM", slotsResp.Slots[0])

	rec = doRequest(t, h, http.MethodPost, "/api/v1/donor/appointments", donorToken,
		map[string]any{"camp_id": 1, "time_slot": slotsResp.Slots[3]})
	require.Equal(t, http.StatusCreated, rec.Code)

	var appt domain.Appointment
	decodeInto(t, rec, &appt)
	assert.Equal(t, domain.AppointmentStatusScheduled, appt.Status)
	assert.Equal(t, "City Community Center Drive", appt.CampName)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/donor/appointments", donorToken,
		map[string]any{"camp_id": 4, "time_slot": "10:00 AM"})
	assert.Equal(t, http.StatusConflict, rec.Code, "camp 4 is already completed")
}

func TestRouter_Register(t *testing.T) {
	h := newTestRouter(t)

	payload := map[string]any{
		"name":             "New Donor",
		"email":            "newdonor@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"role":             "donor",
		"blood_type":       "A+",
	}

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Tokens struct {
			AccessToken string `json:"access_token"`
		} `json:"tokens"`
	}
	decodeInto(t, rec, &resp)
	require.NotEmpty(t, resp.Tokens.AccessToken, "registration logs the account in")

	profile := doRequest(t, h, http.MethodGet, "/api/v1/profile", resp.Tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, profile.Code)

	t.Run("Duplicate Email", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/register", "", payload)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
