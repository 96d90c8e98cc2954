// Package memory provides an in-memory Store implementing every repository
// interface. It backs the "memory" store mode and the scenario tests; data
// does not survive a restart.
package memory

import (
	"sync"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

// data is the shared mutable state guarded by a single mutex. Mutations are
// synchronous and run to completion, mirroring the single-writer model the
// service layer assumes.
type data struct {
	mu sync.Mutex

	users     map[int32]*domain.User
	inventory map[domain.BloodType]*domain.InventoryEntry
	requests  map[int32]*domain.BloodRequest
	camps     map[int32]*domain.DonationCamp
	appts     map[int32]*domain.Appointment
	donations []domain.DonationRecord
	notes     map[int32]*domain.Notification

	nextUserID     int32
	nextRequestID  int32
	nextCampID     int32
	nextApptID     int32
	nextDonationID int32
	nextNoteID     int32
}

type Store struct {
	d *data
	repository.UserRepository
	repository.InventoryRepository
	repository.RequestRepository
	repository.CampRepository
	repository.AppointmentRepository
	repository.DonationRepository
	repository.NotificationRepository
}

func NewStore() *Store {
	d := &data{
		users:     make(map[int32]*domain.User),
		inventory: make(map[domain.BloodType]*domain.InventoryEntry),
		requests:  make(map[int32]*domain.BloodRequest),
		camps:     make(map[int32]*domain.DonationCamp),
		appts:     make(map[int32]*domain.Appointment),
		notes:     make(map[int32]*domain.Notification),
	}
	today := time.Now().Format("2006-01-02")
	for _, bt := range domain.AllBloodTypes {
		d.inventory[bt] = &domain.InventoryEntry{
			BloodType: bt,
			Quantity:  0,
			Status:    domain.DeriveStockStatus(0),
			UpdatedOn: today,
		}
	}
	return &Store{
		d:                      d,
		UserRepository:         &userRepo{d},
		InventoryRepository:    &inventoryRepo{d},
		RequestRepository:      &requestRepo{d},
		CampRepository:         &campRepo{d},
		AppointmentRepository:  &appointmentRepo{d},
		DonationRepository:     &donationRepo{d},
		NotificationRepository: &notificationRepo{d},
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}
