package memory

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type requestRepo struct {
	d *data
}

func (r *requestRepo) Create(ctx context.Context, req *domain.BloodRequest) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.nextRequestID++
	req.ID = r.d.nextRequestID
	cp := *req
	r.d.requests[req.ID] = &cp
	return nil
}

func (r *requestRepo) GetByID(ctx context.Context, id int32) (*domain.BloodRequest, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	req, ok := r.d.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *requestRepo) List(ctx context.Context) ([]domain.BloodRequest, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var requests []domain.BloodRequest
	for _, req := range r.d.requests {
		requests = append(requests, *req)
	}
	return requests, nil
}

func (r *requestRepo) ListByReceiver(ctx context.Context, receiverID int32) ([]domain.BloodRequest, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var requests []domain.BloodRequest
	for _, req := range r.d.requests {
		if req.ReceiverID == receiverID {
			requests = append(requests, *req)
		}
	}
	return requests, nil
}

// Finalize mirrors the postgres compare-and-swap: the swap happens under the
// store lock, so only one decision can move a request out of Pending.
func (r *requestRepo) Finalize(ctx context.Context, id int32, status domain.RequestStatus, decidedOn string) (bool, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	req, ok := r.d.requests[id]
	if !ok {
		return false, nil
	}
	if req.Status != domain.RequestStatusPending {
		return false, nil
	}
	req.Status = status
	req.DecidedOn = &decidedOn
	return true, nil
}

func (r *requestRepo) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var count int32
	for _, req := range r.d.requests {
		if req.Status == status {
			count++
		}
	}
	return count, nil
}
