package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	ownerID := uuid.New()

	token, err := svc.GenerateToken(ownerID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.OwnerID)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, time.Hour.Seconds(), claims.RemainingLifetime(time.Now()).Seconds(), 5)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	ownerID := uuid.New()

	a, err := svc.GenerateToken(ownerID)
	require.NoError(t, err)
	b, err := svc.GenerateToken(ownerID)
	require.NoError(t, err)

	ca, _ := svc.ValidateToken(a)
	cb, _ := svc.ValidateToken(b)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("arise")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("arise", hash))
	assert.False(t, CheckPasswordHash("rise", hash))
}
