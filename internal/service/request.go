package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
)

var (
	ErrRequestNotFound  = errors.New("blood request not found")
	ErrAlreadyFinalized = errors.New("request has already been approved or rejected")
	ErrInvalidUnits     = errors.New("units must be at least 1")
	ErrInvalidUrgency   = errors.New("unknown urgency level")
	ErrMissingHospital  = errors.New("hospital is required")
	ErrMissingReason    = errors.New("reason is required")
)

type requestService struct {
	reqRepo  repository.RequestRepository
	userRepo repository.UserRepository
	invSvc   InventoryService
	noteRepo repository.NotificationRepository
	emailSvc EmailService
}

func NewRequestService(
	reqRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	invSvc InventoryService,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		reqRepo:  reqRepo,
		userRepo: userRepo,
		invSvc:   invSvc,
		noteRepo: noteRepo,
		emailSvc: emailSvc,
	}
}

func (s *requestService) Submit(ctx context.Context, receiverID int32, bloodType domain.BloodType, units int32, hospital string, urgency domain.Urgency, reason string) (*domain.BloodRequest, error) {
	if units < 1 {
		return nil, ErrInvalidUnits
	}
	if !bloodType.IsValid() {
		return nil, ErrUnknownBloodType
	}
	if !urgency.IsValid() {
		return nil, ErrInvalidUrgency
	}
	if strings.TrimSpace(hospital) == "" {
		return nil, ErrMissingHospital
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingReason
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	req := &domain.BloodRequest{
		Reference:    "REQ-" + strings.ToUpper(uuid.NewString()[:8]),
		ReceiverID:   receiver.ID,
		ReceiverName: receiver.Name,
		BloodType:    bloodType,
		Units:        units,
		RequestDate:  time.Now().Format("2006-01-02"),
		Status:       domain.RequestStatusPending,
		Urgency:      urgency,
		Hospital:     hospital,
		Reason:       reason,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "blood request submitted",
		"request_id", req.ID, "reference", req.Reference,
		"blood_type", bloodType, "units", units, "urgency", urgency)
	return req, nil
}

// Approve finalizes a pending request and decrements inventory by the
// approved units. The status write is a compare-and-swap on Pending, so two
// admins deciding the same request race safely: exactly one wins and only the
// winner's decrement runs.
func (s *requestService) Approve(ctx context.Context, requestID int32) (*domain.BloodRequest, error) {
	req, err := s.finalize(ctx, requestID, domain.RequestStatusApproved)
	if err != nil {
		return nil, err
	}

	if _, err := s.invSvc.DecrementForApproval(ctx, req.BloodType, req.Units); err != nil {
		logger.ErrorContext(ctx, "inventory decrement failed after approval",
			"request_id", req.ID, "blood_type", req.BloodType, "units", req.Units, "error", err)
		return nil, err
	}

	s.notifyReceiver(ctx, req)
	return req, nil
}

// Reject finalizes a pending request with no inventory effect.
func (s *requestService) Reject(ctx context.Context, requestID int32) (*domain.BloodRequest, error) {
	req, err := s.finalize(ctx, requestID, domain.RequestStatusRejected)
	if err != nil {
		return nil, err
	}
	s.notifyReceiver(ctx, req)
	return req, nil
}

func (s *requestService) finalize(ctx context.Context, requestID int32, status domain.RequestStatus) (*domain.BloodRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status.IsFinal() {
		return nil, ErrAlreadyFinalized
	}

	decidedOn := time.Now().Format("2006-01-02")
	swapped, err := s.reqRepo.Finalize(ctx, requestID, status, decidedOn)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// Lost the race to a concurrent decision.
		return nil, ErrAlreadyFinalized
	}

	req.Status = status
	req.DecidedOn = &decidedOn
	logger.InfoContext(ctx, "blood request finalized",
		"request_id", req.ID, "reference", req.Reference, "status", status)
	return req, nil
}

func (s *requestService) List(ctx context.Context) ([]domain.BloodRequest, error) {
	requests, err := s.reqRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortForTriage(requests)
	return requests, nil
}

func (s *requestService) ListByReceiver(ctx context.Context, receiverID int32) ([]domain.BloodRequest, error) {
	requests, err := s.reqRepo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	domain.SortForTriage(requests)
	return requests, nil
}

func (s *requestService) notifyReceiver(ctx context.Context, req *domain.BloodRequest) {
	note := &domain.Notification{
		UserID:  req.ReceiverID,
		Title:   fmt.Sprintf("Request %s %s", req.Reference, strings.ToLower(string(req.Status))),
		Message: fmt.Sprintf("Your request for %d units of %s has been %s.", req.Units, req.BloodType, strings.ToLower(string(req.Status))),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.ErrorContext(ctx, "failed to write decision notification", "request_id", req.ID, "error", err)
	}

	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load receiver for decision email", "request_id", req.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendRequestDecision(ctx, req, receiver.Email); err != nil {
		logger.ErrorContext(ctx, "failed to send decision email", "request_id", req.ID, "error", err)
	}
}
