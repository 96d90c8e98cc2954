package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
)

type campRepository struct {
	db *sql.DB
}

func NewCampRepository(db *sql.DB) repository.CampRepository {
	return &campRepository{db: db}
}

const campColumns = `id, name, location, date, time_range, organizer, contact_phone, slots, status, COALESCE(description, ''), created_on`

func (r *campRepository) Create(ctx context.Context, camp *domain.DonationCamp) error {
	query := `INSERT INTO donation_camps (name, location, date, time_range, organizer, contact_phone, slots, status, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	camp.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		camp.Name, camp.Location, camp.Date, camp.Time, camp.Organizer,
		camp.ContactPhone, camp.Slots, camp.Status, camp.Description, camp.CreatedOn,
	).Scan(&camp.ID)
}

func (r *campRepository) GetByID(ctx context.Context, id int32) (*domain.DonationCamp, error) {
	query := `SELECT ` + campColumns + ` FROM donation_camps WHERE id = $1`
	camp, err := scanCamp(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return camp, nil
}

func (r *campRepository) List(ctx context.Context) ([]domain.DonationCamp, error) {
	query := `SELECT ` + campColumns + ` FROM donation_camps ORDER BY date`
	return r.queryMany(ctx, query)
}

func (r *campRepository) ListByStatus(ctx context.Context, status domain.CampStatus) ([]domain.DonationCamp, error) {
	query := `SELECT ` + campColumns + ` FROM donation_camps WHERE status = $1 ORDER BY date`
	return r.queryMany(ctx, query, status)
}

func (r *campRepository) Update(ctx context.Context, camp *domain.DonationCamp) error {
	query := `UPDATE donation_camps SET name=$1, location=$2, date=$3, time_range=$4, organizer=$5, contact_phone=$6, slots=$7, status=$8, description=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query,
		camp.Name, camp.Location, camp.Date, camp.Time, camp.Organizer,
		camp.ContactPhone, camp.Slots, camp.Status, camp.Description, camp.ID,
	)
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

func (r *campRepository) CompletePastCamps(ctx context.Context, today string) ([]int32, error) {
	query := `UPDATE donation_camps SET status=$1 WHERE status=$2 AND date < $3 RETURNING id`
	logger.DatabaseCall("UPDATE", "donation_camps", "before", today)
	rows, err := r.db.QueryContext(ctx, query, domain.CampStatusCompleted, domain.CampStatusUpcoming, today)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	logger.DatabaseResult("UPDATE", int64(len(ids)), rows.Err())
	return ids, rows.Err()
}

func (r *campRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.DonationCamp, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var camps []domain.DonationCamp
	for rows.Next() {
		camp, err := scanCamp(rows)
		if err != nil {
			return nil, err
		}
		camps = append(camps, *camp)
	}
	return camps, rows.Err()
}

func scanCamp(row rowScanner) (*domain.DonationCamp, error) {
	camp := &domain.DonationCamp{}
	var date, createdOn time.Time
	err := row.Scan(
		&camp.ID, &camp.Name, &camp.Location, &date, &camp.Time, &camp.Organizer,
		&camp.ContactPhone, &camp.Slots, &camp.Status, &camp.Description, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	camp.Date = date.Format("2006-01-02")
	camp.CreatedOn = createdOn.Format("2006-01-02")
	return camp, nil
}
