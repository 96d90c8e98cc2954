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

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, reference, receiver_id, receiver_name, blood_type, units, request_date, status, urgency, hospital, reason, decided_on`

func (r *requestRepository) Create(ctx context.Context, req *domain.BloodRequest) error {
	query := `INSERT INTO blood_requests (reference, receiver_id, receiver_name, blood_type, units, request_date, status, urgency, hospital, reason)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		req.Reference, req.ReceiverID, req.ReceiverName, string(req.BloodType), req.Units,
		req.RequestDate, req.Status, req.Urgency, req.Hospital, req.Reason,
	).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests`
	return r.queryMany(ctx, query)
}

func (r *requestRepository) ListByReceiver(ctx context.Context, receiverID int32) ([]domain.BloodRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM blood_requests WHERE receiver_id = $1`
	return r.queryMany(ctx, query, receiverID)
}

// Finalize is a compare-and-swap on status: the row only moves out of
// Pending once, so two concurrent decisions cannot both take effect.
func (r *requestRepository) Finalize(ctx context.Context, id int32, status domain.RequestStatus, decidedOn string) (bool, error) {
	query := `UPDATE blood_requests SET status=$1, decided_on=$2 WHERE id=$3 AND status=$4`
	logger.DatabaseCall("UPDATE", "blood_requests", "request_id", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, status, decidedOn, id, domain.RequestStatusPending)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "request_id", id)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	logger.DatabaseResult("UPDATE", affected, nil, "request_id", id)
	return affected == 1, nil
}

func (r *requestRepository) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blood_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *requestRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.BloodRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.BloodRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func scanRequest(row rowScanner) (*domain.BloodRequest, error) {
	req := &domain.BloodRequest{}
	var bloodType string
	var requestDate time.Time
	var decidedOn sql.NullTime
	err := row.Scan(
		&req.ID, &req.Reference, &req.ReceiverID, &req.ReceiverName, &bloodType, &req.Units,
		&requestDate, &req.Status, &req.Urgency, &req.Hospital, &req.Reason, &decidedOn,
	)
	if err != nil {
		return nil, err
	}
	req.BloodType = domain.BloodType(bloodType)
	req.RequestDate = requestDate.Format("2006-01-02")
	if decidedOn.Valid {
		dateStr := decidedOn.Time.Format("2006-01-02")
		req.DecidedOn = &dateStr
	}
	return req, nil
}
