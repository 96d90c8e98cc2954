package memory

import (
	"context"
	"sort"

	"bloodbank-backend/internal/domain"
)

type donationRepo struct {
	d *data
}

func (r *donationRepo) Create(ctx context.Context, rec *domain.DonationRecord) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.nextDonationID++
	rec.ID = r.d.nextDonationID
	r.d.donations = append(r.d.donations, *rec)
	return nil
}

func (r *donationRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var records []domain.DonationRecord
	for _, rec := range r.d.donations {
		if rec.DonorID == donorID {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	return records, nil
}
