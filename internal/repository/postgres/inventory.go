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

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error) {
	query := `SELECT blood_type, quantity, status, updated_on FROM blood_inventory WHERE blood_type = $1`
	e, err := scanInventoryEntry(r.db.QueryRowContext(ctx, query, string(bloodType)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	query := `SELECT blood_type, quantity, status, updated_on FROM blood_inventory ORDER BY blood_type`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		e, err := scanInventoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *inventoryRepository) SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error) {
	status := domain.DeriveStockStatus(quantity)
	query := `UPDATE blood_inventory SET quantity=$1, status=$2, updated_on=$3 WHERE blood_type=$4
	          RETURNING blood_type, quantity, status, updated_on`
	logger.DatabaseCall("UPDATE", "blood_inventory", "blood_type", bloodType, "quantity", quantity)
	e, err := scanInventoryEntry(r.db.QueryRowContext(ctx, query, quantity, status, time.Now().Format("2006-01-02"), string(bloodType)))
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "blood_type", bloodType)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	logger.DatabaseResult("UPDATE", 1, nil, "blood_type", bloodType)
	return e, nil
}

// AddQuantity applies the delta in one statement so concurrent writers cannot
// lose updates. The stored status is recomputed from the resulting quantity.
func (r *inventoryRepository) AddQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error) {
	query := `UPDATE blood_inventory
	          SET quantity = quantity + $1,
	              status = CASE
	                         WHEN quantity + $1 <= 5 THEN 'Critical'
	                         WHEN quantity + $1 <= 15 THEN 'Low'
	                         ELSE 'Available'
	                       END,
	              updated_on = $2
	          WHERE blood_type = $3
	          RETURNING blood_type, quantity, status, updated_on`
	logger.DatabaseCall("UPDATE", "blood_inventory", "blood_type", bloodType, "delta", delta)
	e, err := scanInventoryEntry(r.db.QueryRowContext(ctx, query, delta, time.Now().Format("2006-01-02"), string(bloodType)))
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "blood_type", bloodType)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	logger.DatabaseResult("UPDATE", 1, nil, "blood_type", bloodType)
	return e, nil
}

func scanInventoryEntry(row rowScanner) (*domain.InventoryEntry, error) {
	e := &domain.InventoryEntry{}
	var bloodType, status string
	var updatedOn time.Time
	if err := row.Scan(&bloodType, &e.Quantity, &status, &updatedOn); err != nil {
		return nil, err
	}
	e.BloodType = domain.BloodType(bloodType)
	e.Status = domain.StockStatus(status)
	e.UpdatedOn = updatedOn.Format("2006-01-02")
	return e, nil
}
