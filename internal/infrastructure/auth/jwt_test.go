package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-bytes-long",
		Issuer:                "shopledger",
		AccessTokenExpiration: time.Hour,
	})
}

func testActor() shared.Actor {
	return shared.Actor{TenantID: uuid.New(), UserID: uuid.New(), UserName: "Asha"}
}

func TestIssueAndValidate(t *testing.T) {
	svc := testService()
	actor := testActor()

	token, expiresAt, err := svc.IssueToken(actor)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	got, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestIssueToken_RequiresTenantAndUser(t *testing.T) {
	_, _, err := testService().IssueToken(shared.Actor{UserID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService()
	token, _, err := svc.IssueToken(testActor())
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := testService()
	other := NewJWTService(config.JWTConfig{Secret: "a-different-secret-of-enough-length", Issuer: "shopledger"})
	foreign, _, err := other.IssueToken(testActor())
	require.NoError(t, err)

	otherIssuer := NewJWTService(config.JWTConfig{Secret: "test-secret-key-at-least-32-bytes-long", Issuer: "elsewhere"})
	wrongIssuer, _, err := otherIssuer.IssueToken(testActor())
	require.NoError(t, err)

	noTenant := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "shopledger"},
		UserID:           uuid.NewString(),
	})
	noTenantToken, err := noTenant.SignedString(svc.secret)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{TenantID: uuid.NewString(), UserID: uuid.NewString()})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-token", ErrInvalidToken},
		{"different secret", foreign, ErrInvalidToken},
		{"different issuer", wrongIssuer, ErrInvalidToken},
		{"alg none", noneToken, ErrInvalidToken},
		{"missing tenant", noTenantToken, ErrMissingTenantID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClaims_ActorRejectsMalformedIDs(t *testing.T) {
	_, err := (&Claims{TenantID: "x", UserID: uuid.NewString()}).Actor()
	assert.ErrorIs(t, err, ErrMissingTenantID)

	_, err = (&Claims{TenantID: uuid.NewString(), UserID: "y"}).Actor()
	assert.ErrorIs(t, err, ErrMissingUserID)
}
