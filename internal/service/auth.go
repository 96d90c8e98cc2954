package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
	"bloodbank-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrInvalidRole        = errors.New("unknown role")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so the response leaks nothing.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	logger.InfoContext(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return user, pair, nil
}

// Register creates the account and logs it in. The role is fixed here and
// never changes afterwards.
func (s *authService) Register(ctx context.Context, user *domain.User, password, confirm string) (*domain.User, *TokenPair, error) {
	if password != confirm {
		return nil, nil, ErrPasswordMismatch
	}
	if !user.Role.IsValid() {
		return nil, nil, ErrInvalidRole
	}

	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	logger.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, pair, nil
}

// Refresh re-issues the token pair from a valid refresh token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, security.ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *authService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile writes mutable profile fields. Role, email and password are
// preserved from the stored record.
func (s *authService) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Email = existing.Email
	user.Role = existing.Role
	user.PasswordHash = existing.PasswordHash
	user.CreatedOn = existing.CreatedOn

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
