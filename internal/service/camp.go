package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
)

var (
	ErrCampNotFound        = errors.New("donation camp not found")
	ErrCampNotUpcoming     = errors.New("camp is not open for appointments")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAppointmentOwner = errors.New("appointment belongs to another donor")
	ErrAppointmentFinal    = errors.New("appointment is already completed or cancelled")
	ErrMissingCampFields   = errors.New("camp name, location, date and time are required")
)

type campService struct {
	campRepo repository.CampRepository
	apptRepo repository.AppointmentRepository
	donRepo  repository.DonationRepository
	userRepo repository.UserRepository
	invSvc   InventoryService
	noteRepo repository.NotificationRepository
	emailSvc EmailService
}

func NewCampService(
	campRepo repository.CampRepository,
	apptRepo repository.AppointmentRepository,
	donRepo repository.DonationRepository,
	userRepo repository.UserRepository,
	invSvc InventoryService,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) CampService {
	return &campService{
		campRepo: campRepo,
		apptRepo: apptRepo,
		donRepo:  donRepo,
		userRepo: userRepo,
		invSvc:   invSvc,
		noteRepo: noteRepo,
		emailSvc: emailSvc,
	}
}

func (s *campService) CreateCamp(ctx context.Context, camp *domain.DonationCamp) (*domain.DonationCamp, error) {
	if err := validateCamp(camp); err != nil {
		return nil, err
	}
	camp.Status = domain.CampStatusUpcoming
	if err := s.campRepo.Create(ctx, camp); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "donation camp created", "camp_id", camp.ID, "date", camp.Date)
	return camp, nil
}

func (s *campService) UpdateCamp(ctx context.Context, camp *domain.DonationCamp) (*domain.DonationCamp, error) {
	if err := validateCamp(camp); err != nil {
		return nil, err
	}
	existing, err := s.campRepo.GetByID(ctx, camp.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, err
	}
	if camp.Status == "" {
		camp.Status = existing.Status
	}
	if err := s.campRepo.Update(ctx, camp); err != nil {
		return nil, err
	}
	return camp, nil
}

func (s *campService) GetCamp(ctx context.Context, id int32) (*domain.DonationCamp, error) {
	camp, err := s.campRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCampNotFound
	}
	return camp, err
}

func (s *campService) ListCamps(ctx context.Context) ([]domain.DonationCamp, error) {
	return s.campRepo.List(ctx)
}

func (s *campService) ListUpcomingCamps(ctx context.Context) ([]domain.DonationCamp, error) {
	return s.campRepo.ListByStatus(ctx, domain.CampStatusUpcoming)
}

func (s *campService) CampTimeSlots(ctx context.Context, campID int32) ([]string, error) {
	camp, err := s.GetCamp(ctx, campID)
	if err != nil {
		return nil, err
	}
	return camp.TimeSlots()
}

// BookAppointment reserves a slot at an upcoming camp. Slot capacity is
// advisory, so bookings are never rejected for a full camp.
func (s *campService) BookAppointment(ctx context.Context, donorID, campID int32, timeSlot string) (*domain.Appointment, error) {
	camp, err := s.GetCamp(ctx, campID)
	if err != nil {
		return nil, err
	}
	if camp.Status != domain.CampStatusUpcoming {
		return nil, ErrCampNotUpcoming
	}

	donor, err := s.userRepo.GetByID(ctx, donorID)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		DonorID:   donor.ID,
		DonorName: donor.Name,
		CampID:    camp.ID,
		CampName:  camp.Name,
		Date:      camp.Date,
		Time:      timeSlot,
		Status:    domain.AppointmentStatusScheduled,
	}
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	note := &domain.Notification{
		UserID:  donor.ID,
		Title:   "Appointment booked",
		Message: fmt.Sprintf("Your donation appointment at %s on %s at %s is confirmed.", camp.Name, camp.Date, timeSlot),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.ErrorContext(ctx, "failed to write booking notification", "appointment_id", appt.ID, "error", err)
	}
	if err := s.emailSvc.SendAppointmentConfirmation(ctx, appt, donor.Email); err != nil {
		logger.ErrorContext(ctx, "failed to send booking email", "appointment_id", appt.ID, "error", err)
	}

	logger.InfoContext(ctx, "appointment booked", "appointment_id", appt.ID, "donor_id", donorID, "camp_id", campID)
	return appt, nil
}

func (s *campService) CancelAppointment(ctx context.Context, donorID, appointmentID int32) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appt.DonorID != donorID {
		return nil, ErrNotAppointmentOwner
	}
	if appt.Status != domain.AppointmentStatusScheduled {
		return nil, ErrAppointmentFinal
	}

	if err := s.apptRepo.UpdateStatus(ctx, appointmentID, domain.AppointmentStatusCancelled); err != nil {
		return nil, err
	}
	appt.Status = domain.AppointmentStatusCancelled
	return appt, nil
}

func (s *campService) ListAppointmentsByDonor(ctx context.Context, donorID int32) ([]domain.Appointment, error) {
	return s.apptRepo.ListByDonor(ctx, donorID)
}

// RecordDonation marks an appointment's donation as collected: the history
// gets an append-only record, the appointment completes, the donor's running
// totals advance and one unit of the donor's blood type returns to stock.
func (s *campService) RecordDonation(ctx context.Context, appointmentID int32, amount, center string) (*domain.DonationRecord, error) {
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appt.Status != domain.AppointmentStatusScheduled {
		return nil, ErrAppointmentFinal
	}

	donor, err := s.userRepo.GetByID(ctx, appt.DonorID)
	if err != nil {
		return nil, err
	}

	if center == "" {
		center = appt.CampName
	}
	if amount == "" {
		amount = "450ml"
	}

	rec := &domain.DonationRecord{
		DonorID:   donor.ID,
		DonorName: donor.Name,
		BloodType: donor.BloodType,
		Amount:    amount,
		Date:      time.Now().Format("2006-01-02"),
		Center:    center,
		Status:    domain.DonationStatusSuccessful,
	}
	if err := s.donRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if err := s.apptRepo.UpdateStatus(ctx, appointmentID, domain.AppointmentStatusCompleted); err != nil {
		return nil, err
	}

	donor.LastDonation = rec.Date
	donor.Donations++
	if err := s.userRepo.Update(ctx, donor); err != nil {
		logger.ErrorContext(ctx, "failed to update donor totals", "donor_id", donor.ID, "error", err)
	}

	if donor.BloodType.IsValid() {
		if _, err := s.invSvc.AdjustQuantity(ctx, donor.BloodType, 1); err != nil {
			logger.ErrorContext(ctx, "failed to restock after donation", "blood_type", donor.BloodType, "error", err)
		}
	}

	logger.InfoContext(ctx, "donation recorded", "donation_id", rec.ID, "donor_id", donor.ID, "blood_type", rec.BloodType)
	return rec, nil
}

func (s *campService) ListDonationsByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error) {
	return s.donRepo.ListByDonor(ctx, donorID)
}

func validateCamp(camp *domain.DonationCamp) error {
	if strings.TrimSpace(camp.Name) == "" ||
		strings.TrimSpace(camp.Location) == "" ||
		strings.TrimSpace(camp.Date) == "" ||
		strings.TrimSpace(camp.Time) == "" {
		return ErrMissingCampFields
	}
	if _, err := camp.TimeSlots(); err != nil {
		return err
	}
	return nil
}
