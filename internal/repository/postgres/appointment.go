package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type appointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, donor_id, donor_name, camp_id, camp_name, date, time_slot, status, created_on`

func (r *appointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	query := `INSERT INTO appointments (donor_id, donor_name, camp_id, camp_name, date, time_slot, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	appt.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		appt.DonorID, appt.DonorName, appt.CampID, appt.CampName,
		appt.Date, appt.Time, appt.Status, appt.CreatedOn,
	).Scan(&appt.ID)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int32) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	appt, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return appt, nil
}

func (r *appointmentRepository) ListByDonor(ctx context.Context, donorID int32) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE donor_id = $1 ORDER BY date`
	return r.queryMany(ctx, query, donorID)
}

func (r *appointmentRepository) ListByCamp(ctx context.Context, campID int32) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE camp_id = $1 ORDER BY date`
	return r.queryMany(ctx, query, campID)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int32, status domain.AppointmentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE appointments SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) CompleteByCamp(ctx context.Context, campID int32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status=$1 WHERE camp_id=$2 AND status=$3`,
		domain.AppointmentStatusCompleted, campID, domain.AppointmentStatusScheduled,
	)
	return err
}

func (r *appointmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, *appt)
	}
	return appts, rows.Err()
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	appt := &domain.Appointment{}
	var date, createdOn time.Time
	err := row.Scan(
		&appt.ID, &appt.DonorID, &appt.DonorName, &appt.CampID, &appt.CampName,
		&date, &appt.Time, &appt.Status, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	appt.Date = date.Format("2006-01-02")
	appt.CreatedOn = createdOn.Format("2006-01-02")
	return appt, nil
}
