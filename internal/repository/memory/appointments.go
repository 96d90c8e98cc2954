package memory

import (
	"context"
	"sort"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type appointmentRepo struct {
	d *data
}

func (r *appointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.nextApptID++
	appt.ID = r.d.nextApptID
	if appt.Status == "" {
		appt.Status = domain.AppointmentStatusScheduled
	}
	appt.CreatedOn = today()
	cp := *appt
	r.d.appts[appt.ID] = &cp
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int32) (*domain.Appointment, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	a, ok := r.d.appts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *appointmentRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.Appointment, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var appts []domain.Appointment
	for _, a := range r.d.appts {
		if a.DonorID == donorID {
			appts = append(appts, *a)
		}
	}
	sortApptsByDate(appts)
	return appts, nil
}

func (r *appointmentRepo) ListByCamp(ctx context.Context, campID int32) ([]domain.Appointment, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var appts []domain.Appointment
	for _, a := range r.d.appts {
		if a.CampID == campID {
			appts = append(appts, *a)
		}
	}
	sortApptsByDate(appts)
	return appts, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id int32, status domain.AppointmentStatus) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	a, ok := r.d.appts[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Status = status
	return nil
}

func (r *appointmentRepo) CompleteByCamp(ctx context.Context, campID int32) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, a := range r.d.appts {
		if a.CampID == campID && a.Status == domain.AppointmentStatusScheduled {
			a.Status = domain.AppointmentStatusCompleted
		}
	}
	return nil
}

func sortApptsByDate(appts []domain.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].ID < appts[j].ID
	})
}
