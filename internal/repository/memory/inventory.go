package memory

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type inventoryRepo struct {
	d *data
}

func (r *inventoryRepo) GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	e, ok := r.d.inventory[bloodType]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	entries := make([]domain.InventoryEntry, 0, len(r.d.inventory))
	for _, bt := range domain.AllBloodTypes {
		entries = append(entries, *r.d.inventory[bt])
	}
	return entries, nil
}

func (r *inventoryRepo) SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	e, ok := r.d.inventory[bloodType]
	if !ok {
		return nil, repository.ErrNotFound
	}
	e.Quantity = quantity
	e.Reclassify()
	e.UpdatedOn = today()
	cp := *e
	return &cp, nil
}

func (r *inventoryRepo) AddQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	e, ok := r.d.inventory[bloodType]
	if !ok {
		return nil, repository.ErrNotFound
	}
	e.Quantity += delta
	e.Reclassify()
	e.UpdatedOn = today()
	cp := *e
	return &cp, nil
}
