package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	policy *AccessPolicy
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, policy *AccessPolicy, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, policy: policy, logger: logger}
}

// Store upserts the caller keyed by identity subject. Profile fields are
// refreshed on every login; role and activity are never touched here.
func (s *UserService) Store(ctx context.Context, identity ports.Identity) (string, error) {
	if identity.Subject == "" {
		return "", domain.ErrUnauthenticated
	}

	existing, err := s.repo.FindByExternalID(ctx, identity.Subject)
	if err == nil {
		existing.Name = identity.Name
		existing.Email = identity.Email
		existing.ImageURL = identity.ImageURL
		if err := s.repo.Update(ctx, existing); err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	user := &domain.User{
		ExternalID: identity.Subject,
		Email:      identity.Email,
		Name:       identity.Name,
		ImageURL:   identity.ImageURL,
		Role:       domain.RoleUser,
		IsActive:   domain.Active(true),
		CreatedAt:  time.Now().UnixMilli(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("user_id", id).Str("subject", identity.Subject).Msg("user provisioned")
	return id, nil
}

// Current resolves the caller, or nil when anonymous or not yet provisioned.
func (s *UserService) Current(ctx context.Context, subject string) (*domain.User, error) {
	return s.policy.CurrentUser(ctx, subject)
}

// PromoteToAdmin promotes the target user to an active admin. While no
// admin exists the call needs no authorization; this is the single
// bootstrap path and it closes as soon as the first admin record exists.
func (s *UserService) PromoteToAdmin(ctx context.Context, subject, userID string) error {
	admins, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if admins > 0 {
		if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
			return err
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Role = domain.RoleAdmin
	user.IsActive = domain.Active(true)

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Bool("bootstrap", admins == 0).Msg("user promoted to admin")
	return nil
}

// UpdateRole sets the target's role directly. Admin only.
func (s *UserService) UpdateRole(ctx context.Context, subject, userID, role string) error {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Role = role
	return s.repo.Update(ctx, user)
}

// ToggleStatus flips the target's activity flag, treating an unset flag as
// active. Admin only. Returns the new value.
func (s *UserService) ToggleStatus(ctx context.Context, subject, userID string) (bool, error) {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return false, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	next := !user.EffectiveActive()
	user.IsActive = domain.Active(next)

	if err := s.repo.Update(ctx, user); err != nil {
		return false, err
	}
	s.logger.Info().Str("user_id", userID).Bool("is_active", next).Msg("user status toggled")
	return next, nil
}

// ListAll returns every user, newest first. Admin only.
func (s *UserService) ListAll(ctx context.Context, subject string) ([]*domain.User, error) {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}
