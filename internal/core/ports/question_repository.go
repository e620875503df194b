package ports

import (
	"context"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

// QuestionRepository defines persistence operations for questions.
// Each call is a single round-trip against the document store; filtering,
// sorting, and pagination happen in the service layer over the full set.
type QuestionRepository interface {
	Insert(ctx context.Context, q *domain.Question) (string, error)
	// FindByID returns domain.ErrQuestionNotFound when the id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	FindAll(ctx context.Context) ([]*domain.Question, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Question, error)
	FindByStatus(ctx context.Context, status domain.QuestionStatus) ([]*domain.Question, error)
	// Update replaces the stored document identified by q.ID.
	Update(ctx context.Context, q *domain.Question) error
	// Delete returns domain.ErrQuestionNotFound when the id does not resolve.
	Delete(ctx context.Context, id string) error
	// IncrementViews and IncrementHelpful add exactly one to the counter
	// and report whether the id resolved. Both are silent no-ops when it
	// does not.
	IncrementViews(ctx context.Context, id string) (bool, error)
	IncrementHelpful(ctx context.Context, id string) (bool, error)
}
