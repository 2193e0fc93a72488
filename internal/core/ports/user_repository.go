package ports

import (
	"context"

	"github.com/auditsafe/audit-insights/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, profile domain.Profile) (*domain.User, error)
}
