package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

// MaintenanceService runs the one-time backfill sweeps that heal records
// written before the role/isActive/status/source fields existed. Both
// sweeps require an active admin caller.
type MaintenanceService struct {
	users     ports.UserRepository
	questions ports.QuestionRepository
	policy    *AccessPolicy
	logger    zerolog.Logger
}

func NewMaintenanceService(users ports.UserRepository, questions ports.QuestionRepository, policy *AccessPolicy, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{users: users, questions: questions, policy: policy, logger: logger}
}

// FixExistingData fills defaulted fields and additionally resets the view
// and helpful counters of every question to zero.
func (s *MaintenanceService) FixExistingData(ctx context.Context, subject string) (*ports.MaintenanceResult, error) {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return nil, err
	}
	return s.sweep(ctx, true)
}

// MigrateData fills defaulted fields without touching counters.
func (s *MaintenanceService) MigrateData(ctx context.Context, subject string) (*ports.MaintenanceResult, error) {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return nil, err
	}
	return s.sweep(ctx, false)
}

func (s *MaintenanceService) sweep(ctx context.Context, resetCounters bool) (*ports.MaintenanceResult, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &ports.MaintenanceResult{
		UsersTotal:     len(users),
		QuestionsTotal: len(questions),
	}

	for _, user := range users {
		changed := false
		if user.Role == "" {
			user.Role = domain.RoleUser
			changed = true
		}
		if user.IsActive == nil {
			user.IsActive = domain.Active(true)
			changed = true
		}
		if !changed {
			continue
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
		result.UsersUpdated++
	}

	for _, question := range questions {
		changed := false
		if question.Source == "" {
			question.Source = question.EffectiveSource()
			changed = true
		}
		if question.Status == "" {
			question.Status = question.EffectiveStatus()
			changed = true
		}
		if resetCounters {
			question.Views = 0
			question.Helpful = 0
			changed = true
		}
		if !changed {
			continue
		}
		if err := s.questions.Update(ctx, question); err != nil {
			return nil, err
		}
		result.QuestionsUpdated++
	}

	s.logger.Info().
		Int("users_updated", result.UsersUpdated).
		Int("questions_updated", result.QuestionsUpdated).
		Bool("counters_reset", resetCounters).
		Msg("backfill sweep completed")

	return result, nil
}
