package service

import (
	"context"

	"bloodbank-backend/internal/domain"
)

// TokenPair is the access/refresh token bundle handed to clients on login,
// registration and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Register(ctx context.Context, user *domain.User, password, confirm string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
}

type InventoryService interface {
	List(ctx context.Context) ([]domain.InventoryEntry, error)
	GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error)
	SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error)
	// AdjustQuantity applies a relative delta, clamping the result at zero.
	AdjustQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error)
	// DecrementForApproval subtracts approved units without clamping; the
	// quantity may go negative, which is surfaced as a backlog signal.
	DecrementForApproval(ctx context.Context, bloodType domain.BloodType, units int32) (*domain.InventoryEntry, error)
}

type RequestService interface {
	Submit(ctx context.Context, receiverID int32, bloodType domain.BloodType, units int32, hospital string, urgency domain.Urgency, reason string) (*domain.BloodRequest, error)
	Approve(ctx context.Context, requestID int32) (*domain.BloodRequest, error)
	Reject(ctx context.Context, requestID int32) (*domain.BloodRequest, error)
	List(ctx context.Context) ([]domain.BloodRequest, error)
	ListByReceiver(ctx context.Context, receiverID int32) ([]domain.BloodRequest, error)
}

type CampService interface {
	CreateCamp(ctx context.Context, camp *domain.DonationCamp) (*domain.DonationCamp, error)
	UpdateCamp(ctx context.Context, camp *domain.DonationCamp) (*domain.DonationCamp, error)
	GetCamp(ctx context.Context, id int32) (*domain.DonationCamp, error)
	ListCamps(ctx context.Context) ([]domain.DonationCamp, error)
	ListUpcomingCamps(ctx context.Context) ([]domain.DonationCamp, error)
	CampTimeSlots(ctx context.Context, campID int32) ([]string, error)

	BookAppointment(ctx context.Context, donorID, campID int32, timeSlot string) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, donorID, appointmentID int32) (*domain.Appointment, error)
	ListAppointmentsByDonor(ctx context.Context, donorID int32) ([]domain.Appointment, error)

	// RecordDonation appends a donation record, completes the appointment and
	// restocks inventory for the donor's blood type.
	RecordDonation(ctx context.Context, appointmentID int32, amount, center string) (*domain.DonationRecord, error)
	ListDonationsByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error)
}

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalUnits      int32 `json:"total_units"`
	CriticalTypes   int32 `json:"critical_types"`
	LowTypes        int32 `json:"low_types"`
	PendingRequests int32 `json:"pending_requests"`
	UpcomingCamps   int32 `json:"upcoming_camps"`
	TotalDonors     int32 `json:"total_donors"`
}

type AdminService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	ListDonors(ctx context.Context) ([]domain.User, error)
	ListReceivers(ctx context.Context) ([]domain.User, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, limit int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendRequestDecision(ctx context.Context, req *domain.BloodRequest, recipientEmail string) error
	SendLowStockAlert(ctx context.Context, entries []domain.InventoryEntry) error
	SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, recipientEmail string) error
}
