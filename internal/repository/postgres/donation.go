package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, rec *domain.DonationRecord) error {
	query := `INSERT INTO donation_history (donor_id, donor_name, blood_type, amount, date, center, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rec.DonorID, rec.DonorName, string(rec.BloodType), rec.Amount, rec.Date, rec.Center, rec.Status,
	).Scan(&rec.ID)
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error) {
	query := `SELECT id, donor_id, donor_name, blood_type, amount, date, center, status
	          FROM donation_history WHERE donor_id = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DonationRecord
	for rows.Next() {
		var rec domain.DonationRecord
		var bloodType string
		var date time.Time
		if err := rows.Scan(&rec.ID, &rec.DonorID, &rec.DonorName, &bloodType, &rec.Amount, &date, &rec.Center, &rec.Status); err != nil {
			return nil, err
		}
		rec.BloodType = domain.BloodType(bloodType)
		rec.Date = date.Format("2006-01-02")
		records = append(records, rec)
	}
	return records, rows.Err()
}
