// Package http exposes the JSON API: public auth routes plus role-gated
// donor, receiver and admin surfaces.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"
)

// Services bundles the dependencies the router needs.
type Services struct {
	Auth         service.AuthService
	Inventory    service.InventoryService
	Request      service.RequestService
	Camp         service.CampService
	Admin        service.AdminService
	Notification service.NotificationService
}

// NewRouter builds the full route table. Every route passes through the
// token-resolving middleware; protected routes additionally apply the role
// gate.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	invHandler := NewInventoryHandler(svcs.Inventory)
	reqHandler := NewRequestHandler(svcs.Request)
	campHandler := NewCampHandler(svcs.Camp)
	donorHandler := NewDonorHandler(svcs.Camp)
	adminHandler := NewAdminHandler(svcs.Admin, svcs.Camp)
	noteHandler := NewNotificationHandler(svcs.Notification)

	r := mux.NewRouter()
	r.Use(authMiddleware(tokens))

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Any authenticated user
	api.HandleFunc("/profile", requireAuth(authHandler.GetProfile)).Methods(http.MethodGet)
	api.HandleFunc("/profile", requireAuth(authHandler.UpdateProfile)).Methods(http.MethodPut)
	api.HandleFunc("/notifications", requireAuth(noteHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", requireAuth(noteHandler.MarkAsRead)).Methods(http.MethodPost)
	api.HandleFunc("/inventory", requireAuth(invHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{type}", requireAuth(invHandler.GetByType)).Methods(http.MethodGet)
	api.HandleFunc("/camps", requireAuth(campHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/camps/{id}", requireAuth(campHandler.Get)).Methods(http.MethodGet)
	api.HandleFunc("/camps/{id}/slots", requireAuth(campHandler.TimeSlots)).Methods(http.MethodGet)

	// Donor
	api.HandleFunc("/donor/appointments", requireRole(domain.RoleDonor, donorHandler.BookAppointment)).Methods(http.MethodPost)
	api.HandleFunc("/donor/appointments", requireRole(domain.RoleDonor, donorHandler.ListAppointments)).Methods(http.MethodGet)
	api.HandleFunc("/donor/appointments/{id}/cancel", requireRole(domain.RoleDonor, donorHandler.CancelAppointment)).Methods(http.MethodPost)
	api.HandleFunc("/donor/donations", requireRole(domain.RoleDonor, donorHandler.ListDonations)).Methods(http.MethodGet)

	// Receiver
	api.HandleFunc("/receiver/requests", requireRole(domain.RoleReceiver, reqHandler.Submit)).Methods(http.MethodPost)
	api.HandleFunc("/receiver/requests", requireRole(domain.RoleReceiver, reqHandler.ListMine)).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/dashboard", requireRole(domain.RoleAdmin, adminHandler.DashboardStats)).Methods(http.MethodGet)
	api.HandleFunc("/admin/donors", requireRole(domain.RoleAdmin, adminHandler.ListDonors)).Methods(http.MethodGet)
	api.HandleFunc("/admin/receivers", requireRole(domain.RoleAdmin, adminHandler.ListReceivers)).Methods(http.MethodGet)
	api.HandleFunc("/admin/requests", requireRole(domain.RoleAdmin, reqHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/admin/requests/{id}/approve", requireRole(domain.RoleAdmin, reqHandler.Approve)).Methods(http.MethodPost)
	api.HandleFunc("/admin/requests/{id}/reject", requireRole(domain.RoleAdmin, reqHandler.Reject)).Methods(http.MethodPost)
	api.HandleFunc("/admin/inventory/{type}", requireRole(domain.RoleAdmin, invHandler.SetQuantity)).Methods(http.MethodPut)
	api.HandleFunc("/admin/inventory/{type}/adjust", requireRole(domain.RoleAdmin, invHandler.AdjustQuantity)).Methods(http.MethodPost)
	api.HandleFunc("/admin/camps", requireRole(domain.RoleAdmin, campHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/admin/camps/{id}", requireRole(domain.RoleAdmin, campHandler.Update)).Methods(http.MethodPut)
	api.HandleFunc("/admin/donations", requireRole(domain.RoleAdmin, adminHandler.RecordDonation)).Methods(http.MethodPost)

	return r
}
