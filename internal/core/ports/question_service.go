package ports

import (
	"context"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

// Sort keys accepted by the public list operation. Anything else falls back
// to oldest-first.
const (
	SortViews   = "views"
	SortHelpful = "helpful"
	SortNewest  = "newest"
	SortOldest  = "oldest"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Pagination is the metadata attached to every paged result.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// QuestionPage is one page of questions plus its pagination metadata.
type QuestionPage struct {
	Questions  []*domain.Question
	Pagination Pagination
}

// ListQuestionsInput carries the public list parameters. All fields are
// optional; zero values fall back to defaults (page 1, limit 12).
type ListQuestionsInput struct {
	Category string
	Search   string
	SortBy   string
	Page     int
	Limit    int
}

// SubmitQuestionInput is a user-submitted question. Subject is the caller's
// identity-provider subject.
type SubmitQuestionInput struct {
	Subject  string
	Question string
	Category string
	Tags     []string
}

// MyQuestionsInput pages through the caller's own submissions.
type MyQuestionsInput struct {
	Subject string
	Page    int
	Limit   int
}

// PendingQuestionsInput pages through the admin triage queue.
type PendingQuestionsInput struct {
	Subject string
	Page    int
	Limit   int
}

// AnswerQuestionInput sets an answer on a question. Tags replace the
// existing tags only when non-nil.
type AnswerQuestionInput struct {
	Subject string
	ID      string
	Answer  string
	Tags    []string
}

// RejectQuestionInput marks a question rejected with a reason.
type RejectQuestionInput struct {
	Subject string
	ID      string
	Reason  string
}

// CreateAdminQuestionInput is an admin-authored, pre-approved question.
type CreateAdminQuestionInput struct {
	Subject  string
	Question string
	Answer   string
	Category string
	Tags     []string
}

// ListAllQuestionsInput pages through questions of any status.
// Status is one of pending/approved/rejected/all; empty means all.
type ListAllQuestionsInput struct {
	Subject string
	Status  string
	Page    int
	Limit   int
}

// AdminStats aggregates counters over the full question set.
type AdminStats struct {
	Total          int64 `json:"total"`
	Pending        int64 `json:"pending"`
	Approved       int64 `json:"approved"`
	Rejected       int64 `json:"rejected"`
	UserQuestions  int64 `json:"userQuestions"`
	AdminQuestions int64 `json:"adminQuestions"`
	TotalViews     int64 `json:"totalViews"`
	TotalHelpful   int64 `json:"totalHelpful"`
}

// CategoryCount is one entry of the category aggregation.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// QuestionService defines all question use cases. Privileged operations
// resolve and authorize the caller through the access policy before
// touching the store.
type QuestionService interface {
	List(ctx context.Context, input ListQuestionsInput) (*QuestionPage, error)
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	Submit(ctx context.Context, input SubmitQuestionInput) (string, error)
	Mine(ctx context.Context, input MyQuestionsInput) (*QuestionPage, error)
	Pending(ctx context.Context, input PendingQuestionsInput) (*QuestionPage, error)
	Answer(ctx context.Context, input AnswerQuestionInput) error
	Reject(ctx context.Context, input RejectQuestionInput) error
	CreateAdmin(ctx context.Context, input CreateAdminQuestionInput) (string, error)
	ListAll(ctx context.Context, input ListAllQuestionsInput) (*QuestionPage, error)
	Delete(ctx context.Context, subject, id string) error
	Stats(ctx context.Context, subject string) (*AdminStats, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementHelpful(ctx context.Context, id string) error
}
