package service

import (
	"context"
	"errors"

	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

// AccessPolicy resolves the caller's identity-provider subject to a user
// record and answers authorization questions. An empty subject means the
// request carried no verified identity.
type AccessPolicy struct {
	users ports.UserRepository
}

func NewAccessPolicy(users ports.UserRepository) *AccessPolicy {
	return &AccessPolicy{users: users}
}

// CurrentUser returns the user matching the subject, or nil when the caller
// is anonymous or not yet provisioned. Side-effect free.
func (p *AccessPolicy) CurrentUser(ctx context.Context, subject string) (*domain.User, error) {
	if subject == "" {
		return nil, nil
	}
	user, err := p.users.FindByExternalID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// IsAdmin reports whether the caller is an active admin.
func (p *AccessPolicy) IsAdmin(ctx context.Context, subject string) (bool, error) {
	user, err := p.CurrentUser(ctx, subject)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

// RequireAuthenticated returns the caller's user record, failing with
// ErrUnauthenticated when none resolves and ErrAccountDisabled when the
// account has been deactivated.
func (p *AccessPolicy) RequireAuthenticated(ctx context.Context, subject string) (*domain.User, error) {
	user, err := p.CurrentUser(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.EffectiveActive() {
		return nil, domain.ErrAccountDisabled
	}
	return user, nil
}

// RequireAdmin returns the caller's user record, failing with
// ErrUnauthenticated when none resolves and ErrForbidden when the caller is
// not an active admin.
func (p *AccessPolicy) RequireAdmin(ctx context.Context, subject string) (*domain.User, error) {
	user, err := p.CurrentUser(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// RequireOwnerOrAdmin passes when the caller owns the resource or is an
// active admin.
func (p *AccessPolicy) RequireOwnerOrAdmin(ctx context.Context, subject, ownerID string) (*domain.User, error) {
	user, err := p.CurrentUser(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if user.ID != ownerID && !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
