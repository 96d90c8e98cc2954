package repository

import (
	"context"
	"errors"

	"bloodbank-backend/internal/domain"
)

// ErrNotFound is returned by every repository when a lookup misses,
// regardless of the backing store.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type InventoryRepository interface {
	GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error)
	List(ctx context.Context) ([]domain.InventoryEntry, error)
	// SetQuantity writes an absolute quantity and its derived status.
	SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error)
	// AddQuantity applies a relative delta in a single statement and returns
	// the updated entry. The delta may drive the quantity negative.
	AddQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.BloodRequest) error
	GetByID(ctx context.Context, id int32) (*domain.BloodRequest, error)
	List(ctx context.Context) ([]domain.BloodRequest, error)
	ListByReceiver(ctx context.Context, receiverID int32) ([]domain.BloodRequest, error)
	// Finalize moves a request out of Pending. It succeeds only when the
	// request is still Pending at write time (compare-and-swap on status);
	// a finalized request reports ErrAlreadyFinalized via its boolean.
	Finalize(ctx context.Context, id int32, status domain.RequestStatus, decidedOn string) (bool, error)
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error)
}

type CampRepository interface {
	Create(ctx context.Context, camp *domain.DonationCamp) error
	GetByID(ctx context.Context, id int32) (*domain.DonationCamp, error)
	List(ctx context.Context) ([]domain.DonationCamp, error)
	ListByStatus(ctx context.Context, status domain.CampStatus) ([]domain.DonationCamp, error)
	Update(ctx context.Context, camp *domain.DonationCamp) error
	// CompletePastCamps marks camps dated before today as Completed and
	// returns the ids of the camps it transitioned.
	CompletePastCamps(ctx context.Context, today string) ([]int32, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id int32) (*domain.Appointment, error)
	ListByDonor(ctx context.Context, donorID int32) ([]domain.Appointment, error)
	ListByCamp(ctx context.Context, campID int32) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int32, status domain.AppointmentStatus) error
	CompleteByCamp(ctx context.Context, campID int32) error
}

type DonationRepository interface {
	Create(ctx context.Context, rec *domain.DonationRecord) error
	ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
