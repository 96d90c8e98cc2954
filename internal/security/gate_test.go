package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloodbank-backend/internal/domain"
)

func TestAuthorize_NoIdentity(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleDonor, domain.RoleReceiver, domain.RoleAdmin, ""} {
		d := Authorize(role, nil)
		assert.Equal(t, DecisionRedirectLogin, d.Kind, string(role))
		assert.Equal(t, "/login", d.Location)
	}
}

func TestAuthorize_RoleMismatch(t *testing.T) {
	donor := &Identity{UserID: 1, Role: domain.RoleDonor}

	d := Authorize(domain.RoleAdmin, donor)
	assert.Equal(t, DecisionRedirectToHome, d.Kind)
	assert.Equal(t, "/donor/dashboard", d.Location)

	receiver := &Identity{UserID: 2, Role: domain.RoleReceiver}
	d = Authorize(domain.RoleDonor, receiver)
	assert.Equal(t, DecisionRedirectToHome, d.Kind)
	assert.Equal(t, "/receiver/dashboard", d.Location)
}

func TestAuthorize_Match(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleDonor, domain.RoleReceiver, domain.RoleAdmin} {
		d := Authorize(role, &Identity{UserID: 1, Role: role})
		assert.Equal(t, DecisionAllow, d.Kind, string(role))
	}
}

func TestAuthorize_NoRequiredRole(t *testing.T) {
	// An empty requirement only demands authentication.
	d := Authorize("", &Identity{UserID: 1, Role: domain.RoleReceiver})
	assert.Equal(t, DecisionAllow, d.Kind)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("0123456789abcdef0123456789abcdef", 60, 60*24*7)

	access, err := tm.GenerateAccessToken(7, "donor@example.com", domain.RoleDonor)
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, domain.RoleDonor, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	refresh, err := tm.GenerateRefreshToken(7, "donor@example.com", domain.RoleDonor)
	assert.NoError(t, err)

	claims, err = tm.ValidateToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("0123456789abcdef0123456789abcdef", 60, 60)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
