package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"bloodbank-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.InventoryRepository
	repository.RequestRepository
	repository.CampRepository
	repository.AppointmentRepository
	repository.DonationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		InventoryRepository:    NewInventoryRepository(db),
		RequestRepository:      NewRequestRepository(db),
		CampRepository:         NewCampRepository(db),
		AppointmentRepository:  NewAppointmentRepository(db),
		DonationRepository:     NewDonationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
