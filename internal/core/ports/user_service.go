package ports

import (
	"context"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

// Identity is the verified principal extracted from the bearer token.
type Identity struct {
	Subject  string
	Email    string
	Name     string
	ImageURL string
}

// UserService defines user provisioning and administration use cases.
type UserService interface {
	// Store upserts the caller keyed by identity subject: refreshes
	// name/email/avatar when found, otherwise creates a regular active
	// user. Returns the user id.
	Store(ctx context.Context, identity Identity) (string, error)
	// Current resolves the caller to a user record, or nil when
	// unauthenticated or not yet provisioned. Side-effect free.
	Current(ctx context.Context, subject string) (*domain.User, error)
	// PromoteToAdmin promotes the target user. When no admin exists yet the
	// call needs no authorization (one-time bootstrap); afterwards it
	// requires an active admin caller.
	PromoteToAdmin(ctx context.Context, subject, userID string) error
	UpdateRole(ctx context.Context, subject, userID, role string) error
	// ToggleStatus flips the target's activity flag and returns the new value.
	ToggleStatus(ctx context.Context, subject, userID string) (bool, error)
	// ListAll returns every user, newest first. Admin only.
	ListAll(ctx context.Context, subject string) ([]*domain.User, error)
}

// MaintenanceResult reports how many records a backfill sweep touched.
type MaintenanceResult struct {
	UsersTotal       int `json:"usersTotal"`
	UsersUpdated     int `json:"usersUpdated"`
	QuestionsTotal   int `json:"questionsTotal"`
	QuestionsUpdated int `json:"questionsUpdated"`
}

// MaintenanceService heals records created before optional fields were
// introduced. Both sweeps are idempotent and admin only.
type MaintenanceService interface {
	// FixExistingData fills defaulted user/question fields and additionally
	// resets the view and helpful counters to zero.
	FixExistingData(ctx context.Context, subject string) (*MaintenanceResult, error)
	// MigrateData fills defaulted fields without touching counters.
	MigrateData(ctx context.Context, subject string) (*MaintenanceResult, error)
}
