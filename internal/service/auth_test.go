package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"
)

const testJWTSecret = "unit-test-secret-0123456789abcdefghij"

func newTokenManager() security.TokenManager {
	return security.NewTokenManager(testJWTSecret, 60, 60*24)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		user := &domain.User{
			ID:           7,
			Name:         "Sarah Receiver",
			Email:        "receiver@example.com",
			PasswordHash: hashPassword(t, "password"),
			Role:         domain.RoleReceiver,
		}
		userRepo.On("GetByEmail", ctx, "receiver@example.com").Return(user, nil)

		got, tokens, err := svc.Login(ctx, "receiver@example.com", "password")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		user := &domain.User{
			ID:           7,
			Email:        "receiver@example.com",
			PasswordHash: hashPassword(t, "password"),
			Role:         domain.RoleReceiver,
		}
		userRepo.On("GetByEmail", ctx, "receiver@example.com").Return(user, nil)

		_, _, err := svc.Login(ctx, "receiver@example.com", "wrong")
		assert.Equal(t, service.ErrInvalidCredentials, err)
	})

	t.Run("Unknown Email Indistinguishable From Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "password")
		assert.Equal(t, service.ErrInvalidCredentials, err)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Is Implicit Login", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, repository.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 42
		}).Return(nil)

		user := &domain.User{Name: "New Donor", Email: "new@example.com", Role: domain.RoleDonor}
		got, tokens, err := svc.Register(ctx, user, "secret123", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, int32(42), got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEqual(t, "secret123", got.PasswordHash, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret123")))
	})

	t.Run("Password Mismatch", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		user := &domain.User{Name: "New Donor", Email: "new@example.com", Role: domain.RoleDonor}
		_, _, err := svc.Register(ctx, user, "secret123", "different")
		assert.Equal(t, service.ErrPasswordMismatch, err)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		existing := &domain.User{ID: 1, Email: "taken@example.com"}
		userRepo.On("GetByEmail", ctx, "taken@example.com").Return(existing, nil)

		user := &domain.User{Name: "Dup", Email: "taken@example.com", Role: domain.RoleDonor}
		_, _, err := svc.Register(ctx, user, "secret123", "secret123")
		assert.Equal(t, service.ErrEmailTaken, err)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid Role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTokenManager())

		user := &domain.User{Name: "X", Email: "x@example.com", Role: "superuser"}
		_, _, err := svc.Register(ctx, user, "secret123", "secret123")
		assert.Equal(t, service.ErrInvalidRole, err)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := newTokenManager()

	userRepo := new(MockUserRepo)
	svc := service.NewAuthService(userRepo, tokens)

	user := &domain.User{ID: 9, Email: "donor@example.com", Role: domain.RoleDonor}
	userRepo.On("GetByID", ctx, int32(9)).Return(user, nil)

	refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	pair, err := svc.Refresh(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	t.Run("Access Token Rejected", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.Equal(t, security.ErrWrongTokenType, err)
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		assert.Equal(t, security.ErrInvalidToken, err)
	})
}

func TestAuthService_UpdateProfile_PreservesIdentityFields(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := service.NewAuthService(userRepo, newTokenManager())

	stored := &domain.User{
		ID:           3,
		Email:        "donor@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleDonor,
		CreatedOn:    "2024-01-01",
	}
	userRepo.On("GetByID", ctx, int32(3)).Return(stored, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	updated, err := svc.UpdateProfile(ctx, &domain.User{
		ID:    3,
		Name:  "Renamed Donor",
		Email: "attacker@example.com",
		Role:  domain.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Donor", updated.Name)
	assert.Equal(t, "donor@example.com", updated.Email)
	assert.Equal(t, domain.RoleDonor, updated.Role)
	assert.Equal(t, "hash", updated.PasswordHash)
}
