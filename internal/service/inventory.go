package service

import (
	"context"
	"errors"
	"fmt"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrUnknownBloodType  = errors.New("unknown blood type")
	ErrInvalidAdjustment = errors.New("adjustment delta must not be zero")
)

type inventoryService struct {
	invRepo  repository.InventoryRepository
	userRepo repository.UserRepository
	noteRepo repository.NotificationRepository
}

func NewInventoryService(invRepo repository.InventoryRepository, userRepo repository.UserRepository, noteRepo repository.NotificationRepository) InventoryService {
	return &inventoryService{invRepo: invRepo, userRepo: userRepo, noteRepo: noteRepo}
}

func (s *inventoryService) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	return s.invRepo.List(ctx)
}

func (s *inventoryService) GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error) {
	if !bloodType.IsValid() {
		return nil, ErrUnknownBloodType
	}
	return s.invRepo.GetByType(ctx, bloodType)
}

func (s *inventoryService) SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error) {
	if !bloodType.IsValid() {
		return nil, ErrUnknownBloodType
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return s.invRepo.SetQuantity(ctx, bloodType, quantity)
}

// AdjustQuantity applies a relative delta and clamps the result at zero, so a
// restock oversubtraction can never leave negative stock.
func (s *inventoryService) AdjustQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error) {
	if !bloodType.IsValid() {
		return nil, ErrUnknownBloodType
	}
	if delta == 0 {
		return nil, ErrInvalidAdjustment
	}

	current, err := s.invRepo.GetByType(ctx, bloodType)
	if err != nil {
		return nil, err
	}
	next := current.Quantity + delta
	if next < 0 {
		next = 0
	}
	return s.invRepo.SetQuantity(ctx, bloodType, next)
}

// DecrementForApproval subtracts approved units in a single statement with no
// floor. Negative stock means approvals have outrun supply; that backlog is
// kept visible rather than blocked, and admins get notified when the balance
// first crosses below zero.
func (s *inventoryService) DecrementForApproval(ctx context.Context, bloodType domain.BloodType, units int32) (*domain.InventoryEntry, error) {
	if !bloodType.IsValid() {
		return nil, ErrUnknownBloodType
	}

	entry, err := s.invRepo.AddQuantity(ctx, bloodType, -units)
	if err != nil {
		return nil, err
	}

	if entry.Quantity < 0 {
		logger.Warn("inventory went negative after approval",
			"blood_type", bloodType, "quantity", entry.Quantity, "units", units)
		s.notifyAdminsOfBacklog(ctx, entry)
	}
	return entry, nil
}

func (s *inventoryService) notifyAdminsOfBacklog(ctx context.Context, entry *domain.InventoryEntry) {
	admins, err := s.userRepo.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list admins for backlog notice", "error", err)
		return
	}
	for _, admin := range admins {
		note := &domain.Notification{
			UserID:  admin.ID,
			Title:   "Inventory backlog",
			Message: fmt.Sprintf("%s stock is at %d units after an approval. Restock needed.", entry.BloodType, entry.Quantity),
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.ErrorContext(ctx, "failed to write backlog notification", "admin_id", admin.ID, "error", err)
		}
	}
}
