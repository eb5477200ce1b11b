package jwt

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresAt, err := svc.GenerateAccessToken("W001", user.RoleWorker)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	workerID, _ := decoded.Get("worker_id")
	role, _ := decoded.Get("role")
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "W001", workerID)
	assert.Equal(t, "worker", role)
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "fifteen minutes")

	_, _, err := svc.GenerateAccessToken("W001", user.RoleWorker)
	assert.Error(t, err)
}
