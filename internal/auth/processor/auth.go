package processor

import (
	"context"
	"crypto/subtle"
	"errors"

	"scriptvault/internal/observability"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrPasswordRequired  = errors.New("password is required")
)

// AuthConfig holds the admin credential. When PasswordHash is set it is a
// bcrypt hash and takes precedence over the plain Password.
type AuthConfig struct {
	Password     string
	PasswordHash string
}

type AuthProcessor struct {
	config AuthConfig
	logger *observability.Logger
}

func New(config AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		config: config,
		logger: logger,
	}
}

// Login checks the admin password and returns a new session credential
func (p *AuthProcessor) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrPasswordRequired
	}

	if !p.passwordMatches(password) {
		p.logger.Warn(ctx, "admin login rejected")
		return "", ErrIncorrectPassword
	}

	p.logger.Info(ctx, "admin logged in")
	return GenerateToken(), nil
}

func (p *AuthProcessor) passwordMatches(password string) bool {
	if p.config.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(p.config.PasswordHash), []byte(password)) == nil
	}
	if p.config.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p.config.Password), []byte(password)) == 1
}
