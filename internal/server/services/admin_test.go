package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/server/config"
)

func adminConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		AdminUsername:         "admin",
		AdminPasswordHash:     string(hash),
	}
}

func TestAdminService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(adminConfig(t, "admin123"))

	token, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestAdminService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAdminService(adminConfig(t, "admin123"))

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Login(ctx, "somebody", "admin123")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAdminService_VerifyRejectsForgedToken(t *testing.T) {
	svc := NewAdminService(adminConfig(t, "admin123"))

	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
