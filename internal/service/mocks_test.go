package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bloodbank-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryRepo) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryRepo) SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryRepo) AddQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.BloodRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.BloodRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}
func (m *MockRequestRepo) List(ctx context.Context) ([]domain.BloodRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BloodRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByReceiver(ctx context.Context, receiverID int32) ([]domain.BloodRequest, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BloodRequest), args.Error(1)
}
func (m *MockRequestRepo) Finalize(ctx context.Context, id int32, status domain.RequestStatus, decidedOn string) (bool, error) {
	args := m.Called(ctx, id, status, decidedOn)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockCampRepo
type MockCampRepo struct {
	mock.Mock
}

func (m *MockCampRepo) Create(ctx context.Context, camp *domain.DonationCamp) error {
	args := m.Called(ctx, camp)
	return args.Error(0)
}
func (m *MockCampRepo) GetByID(ctx context.Context, id int32) (*domain.DonationCamp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationCamp), args.Error(1)
}
func (m *MockCampRepo) List(ctx context.Context) ([]domain.DonationCamp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationCamp), args.Error(1)
}
func (m *MockCampRepo) ListByStatus(ctx context.Context, status domain.CampStatus) ([]domain.DonationCamp, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationCamp), args.Error(1)
}
func (m *MockCampRepo) Update(ctx context.Context, camp *domain.DonationCamp) error {
	args := m.Called(ctx, camp)
	return args.Error(0)
}
func (m *MockCampRepo) CompletePastCamps(ctx context.Context, today string) ([]int32, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

// MockAppointmentRepo
type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	args := m.Called(ctx, appt)
	return args.Error(0)
}
func (m *MockAppointmentRepo) GetByID(ctx context.Context, id int32) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockAppointmentRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.Appointment, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}
func (m *MockAppointmentRepo) ListByCamp(ctx context.Context, campID int32) ([]domain.Appointment, error) {
	args := m.Called(ctx, campID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}
func (m *MockAppointmentRepo) UpdateStatus(ctx context.Context, id int32, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockAppointmentRepo) CompleteByCamp(ctx context.Context, campID int32) error {
	args := m.Called(ctx, campID)
	return args.Error(0)
}

// MockDonationRepo
type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) Create(ctx context.Context, rec *domain.DonationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockDonationRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationRecord), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestDecision(ctx context.Context, req *domain.BloodRequest, recipientEmail string) error {
	args := m.Called(ctx, req, recipientEmail)
	return args.Error(0)
}
func (m *MockEmailService) SendLowStockAlert(ctx context.Context, entries []domain.InventoryEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
func (m *MockEmailService) SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, recipientEmail string) error {
	args := m.Called(ctx, appt, recipientEmail)
	return args.Error(0)
}

// MockInventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryService) GetByType(ctx context.Context, bloodType domain.BloodType) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryService) SetQuantity(ctx context.Context, bloodType domain.BloodType, quantity int32) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryService) AdjustQuantity(ctx context.Context, bloodType domain.BloodType, delta int32) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
func (m *MockInventoryService) DecrementForApproval(ctx context.Context, bloodType domain.BloodType, units int32) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, bloodType, units)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}
