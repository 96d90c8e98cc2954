package memory

import (
	"context"
	"sort"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type campRepo struct {
	d *data
}

func (r *campRepo) Create(ctx context.Context, camp *domain.DonationCamp) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.nextCampID++
	camp.ID = r.d.nextCampID
	if camp.Status == "" {
		camp.Status = domain.CampStatusUpcoming
	}
	camp.CreatedOn = today()
	cp := *camp
	r.d.camps[camp.ID] = &cp
	return nil
}

func (r *campRepo) GetByID(ctx context.Context, id int32) (*domain.DonationCamp, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	c, ok := r.d.camps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *campRepo) List(ctx context.Context) ([]domain.DonationCamp, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var camps []domain.DonationCamp
	for _, c := range r.d.camps {
		camps = append(camps, *c)
	}
	sortCampsByDate(camps)
	return camps, nil
}

func (r *campRepo) ListByStatus(ctx context.Context, status domain.CampStatus) ([]domain.DonationCamp, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var camps []domain.DonationCamp
	for _, c := range r.d.camps {
		if c.Status == status {
			camps = append(camps, *c)
		}
	}
	sortCampsByDate(camps)
	return camps, nil
}

func (r *campRepo) Update(ctx context.Context, camp *domain.DonationCamp) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	existing, ok := r.d.camps[camp.ID]
	if !ok {
		return repository.ErrNotFound
	}
	camp.CreatedOn = existing.CreatedOn
	cp := *camp
	r.d.camps[camp.ID] = &cp
	return nil
}

func (r *campRepo) CompletePastCamps(ctx context.Context, today string) ([]int32, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var completed []int32
	for _, c := range r.d.camps {
		if c.Status == domain.CampStatusUpcoming && c.Date < today {
			c.Status = domain.CampStatusCompleted
			completed = append(completed, c.ID)
		}
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i] < completed[j] })
	return completed, nil
}

// Dates are ISO formatted, so lexical order is chronological.
func sortCampsByDate(camps []domain.DonationCamp) {
	sort.SliceStable(camps, func(i, j int) bool {
		if camps[i].Date != camps[j].Date {
			return camps[i].Date < camps[j].Date
		}
		return camps[i].ID < camps[j].ID
	})
}
