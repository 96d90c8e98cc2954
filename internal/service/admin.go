package service

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
	invRepo  repository.InventoryRepository
	reqRepo  repository.RequestRepository
	campRepo repository.CampRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	invRepo repository.InventoryRepository,
	reqRepo repository.RequestRepository,
	campRepo repository.CampRepository,
) AdminService {
	return &adminService{
		userRepo: userRepo,
		invRepo:  invRepo,
		reqRepo:  reqRepo,
		campRepo: campRepo,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	entries, err := s.invRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		stats.TotalUnits += e.Quantity
		switch e.Status {
		case domain.StockStatusCritical:
			stats.CriticalTypes++
		case domain.StockStatusLow:
			stats.LowTypes++
		}
	}

	pending, err := s.reqRepo.CountByStatus(ctx, domain.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingRequests = pending

	upcoming, err := s.campRepo.ListByStatus(ctx, domain.CampStatusUpcoming)
	if err != nil {
		return nil, err
	}
	stats.UpcomingCamps = int32(len(upcoming))

	donors, err := s.userRepo.ListByRole(ctx, domain.RoleDonor)
	if err != nil {
		return nil, err
	}
	stats.TotalDonors = int32(len(donors))

	return stats, nil
}

func (s *adminService) ListDonors(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, domain.RoleDonor)
}

func (s *adminService) ListReceivers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, domain.RoleReceiver)
}
