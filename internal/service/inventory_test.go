package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/service"
)

func newInventoryService(invRepo *MockInventoryRepo, userRepo *MockUserRepo, noteRepo *MockNotificationRepo) service.InventoryService {
	return service.NewInventoryService(invRepo, userRepo, noteRepo)
}

func TestInventoryService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		svc := newInventoryService(invRepo, new(MockUserRepo), new(MockNotificationRepo))

		entry := &domain.InventoryEntry{BloodType: domain.BloodTypeAPositive, Quantity: 25, Status: domain.StockStatusAvailable}
		invRepo.On("SetQuantity", ctx, domain.BloodTypeAPositive, int32(25)).Return(entry, nil)

		got, err := svc.SetQuantity(ctx, domain.BloodTypeAPositive, 25)
		assert.NoError(t, err)
		assert.Equal(t, domain.StockStatusAvailable, got.Status)
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		svc := newInventoryService(invRepo, new(MockUserRepo), new(MockNotificationRepo))

		_, err := svc.SetQuantity(ctx, domain.BloodTypeAPositive, -1)
		assert.Equal(t, service.ErrInvalidQuantity, err)
		invRepo.AssertNotCalled(t, "SetQuantity")
	})

	t.Run("Unknown Blood Type Rejected", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		svc := newInventoryService(invRepo, new(MockUserRepo), new(MockNotificationRepo))

		_, err := svc.SetQuantity(ctx, "C+", 5)
		assert.Equal(t, service.ErrUnknownBloodType, err)
	})
}

func TestInventoryService_AdjustQuantity_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	invRepo := new(MockInventoryRepo)
	svc := newInventoryService(invRepo, new(MockUserRepo), new(MockNotificationRepo))

	current := &domain.InventoryEntry{BloodType: domain.BloodTypeONegative, Quantity: 3, Status: domain.StockStatusCritical}
	invRepo.On("GetByType", ctx, domain.BloodTypeONegative).Return(current, nil)
	// Removing 10 from 3 clamps to 0 rather than going negative.
	clamped := &domain.InventoryEntry{BloodType: domain.BloodTypeONegative, Quantity: 0, Status: domain.StockStatusCritical}
	invRepo.On("SetQuantity", ctx, domain.BloodTypeONegative, int32(0)).Return(clamped, nil)

	got, err := svc.AdjustQuantity(ctx, domain.BloodTypeONegative, -10)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), got.Quantity)
	invRepo.AssertExpectations(t)
}

func TestInventoryService_AdjustQuantity_AddsUnits(t *testing.T) {
	ctx := context.Background()
	invRepo := new(MockInventoryRepo)
	svc := newInventoryService(invRepo, new(MockUserRepo), new(MockNotificationRepo))

	current := &domain.InventoryEntry{BloodType: domain.BloodTypeBPositive, Quantity: 14, Status: domain.StockStatusLow}
	invRepo.On("GetByType", ctx, domain.BloodTypeBPositive).Return(current, nil)
	bumped := &domain.InventoryEntry{BloodType: domain.BloodTypeBPositive, Quantity: 16, Status: domain.StockStatusAvailable}
	invRepo.On("SetQuantity", ctx, domain.BloodTypeBPositive, int32(16)).Return(bumped, nil)

	got, err := svc.AdjustQuantity(ctx, domain.BloodTypeBPositive, 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.StockStatusAvailable, got.Status)
}

func TestInventoryService_DecrementForApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("Stays Positive", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		noteRepo := new(MockNotificationRepo)
		svc := newInventoryService(invRepo, new(MockUserRepo), noteRepo)

		after := &domain.InventoryEntry{BloodType: domain.BloodTypeABNegative, Quantity: 10, Status: domain.StockStatusLow}
		invRepo.On("AddQuantity", ctx, domain.BloodTypeABNegative, int32(-2)).Return(after, nil)

		got, err := svc.DecrementForApproval(ctx, domain.BloodTypeABNegative, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), got.Quantity)
		noteRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Goes Negative And Notifies Admins", func(t *testing.T) {
		invRepo := new(MockInventoryRepo)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		svc := newInventoryService(invRepo, userRepo, noteRepo)

		after := &domain.InventoryEntry{BloodType: domain.BloodTypeONegative, Quantity: -2, Status: domain.StockStatusCritical}
		invRepo.On("AddQuantity", ctx, domain.BloodTypeONegative, int32(-5)).Return(after, nil)
		admins := []domain.User{{ID: 99, Role: domain.RoleAdmin}}
		userRepo.On("ListByRole", ctx, domain.RoleAdmin).Return(admins, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		got, err := svc.DecrementForApproval(ctx, domain.BloodTypeONegative, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(-2), got.Quantity, "approval decrement does not clamp")
		noteRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.Notification"))
	})
}
