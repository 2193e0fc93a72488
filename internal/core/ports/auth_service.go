package ports

import (
	"context"

	"github.com/auditsafe/audit-insights/internal/core/domain"
)

// RegisterInput carries the registration payload into the service layer.
type RegisterInput struct {
	Email    string
	Password string
	Profile  domain.Profile
}

type AuthService interface {
	// Register creates the account and returns the new user with a session token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	// Login authenticates by email/password and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// VerifyToken checks signature and expiry and returns the email embedded
	// in the token. Identity is always derived from the token, never from
	// caller-supplied fields.
	VerifyToken(token string) (string, error)
	// GetProfile resolves the token and returns its owner's record.
	GetProfile(ctx context.Context, token string) (*domain.User, error)
	// UpdateProfile resolves the token and overwrites its owner's profile fields.
	UpdateProfile(ctx context.Context, token string, profile domain.Profile) (*domain.User, error)
}
