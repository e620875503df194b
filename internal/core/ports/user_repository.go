package ports

import (
	"context"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (string, error)
	// FindByID returns domain.ErrUserNotFound when the id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByExternalID looks a user up by identity-provider subject and
	// returns domain.ErrUserNotFound when no record exists yet.
	FindByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	// FindAll returns every user, newest first.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Update replaces the stored document identified by u.ID.
	Update(ctx context.Context, u *domain.User) error
	// CountAdmins counts users whose stored role is admin, regardless of
	// activity flag. The bootstrap trapdoor keys off this number.
	CountAdmins(ctx context.Context) (int64, error)
}
