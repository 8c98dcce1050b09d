package commands

import (
	"context"

	"ride-together/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenService issues and validates JWTs.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

// Mailer delivers a plain-text e-mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
