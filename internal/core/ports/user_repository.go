package ports

import (
	"context"

	"github.com/rimonomega/sampleapp/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create stores a new user and returns it with its assigned ID.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no user has the given ID.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches the already-normalized (lower-case) email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// UpdateRememberDigest stores digest; an empty digest clears the field.
	UpdateRememberDigest(ctx context.Context, id, digest string) error
	UpdateSessionToken(ctx context.Context, id, token string) error
	// Delete removes the user together with its microposts and relationships.
	Delete(ctx context.Context, id string) error
}
