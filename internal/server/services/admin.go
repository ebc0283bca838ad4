package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/server/auth"
	"github.com/dentinhoapp/dentinho/internal/server/config"
)

// AdminService signs the single configured admin in and verifies the
// bearer tokens it issued.
type AdminService struct {
	config *config.Config
}

func NewAdminService(c *config.Config) *AdminService {
	return &AdminService{config: c}
}

// Login checks the credentials against the configured admin account and
// returns a signed token. common.ErrUnauthorized on any mismatch; the
// caller cannot tell a wrong username from a wrong password.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.config.AdminUsername {
		return "", common.ErrUnauthorized
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(password))
	if err != nil {
		return "", common.ErrUnauthorized
	}

	return auth.GenerateToken(username, []byte(s.config.SecretKey), s.config.TokenValidityDuration)
}

// Verify parses a bearer token and returns the admin username it was
// issued to. common.ErrUnauthorized for expired, forged or malformed
// tokens.
func (s *AdminService) Verify(token string) (string, error) {
	username, err := auth.GetUsernameFromToken(token, []byte(s.config.SecretKey))
	if err != nil {
		return "", common.ErrUnauthorized
	}
	return username, nil
}
