package service

import (
	"context"
	"fmt"

	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	seq   int
	users []*domain.User // insertion order
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.IsActive != nil {
		v := *u.IsActive
		clone.IsActive = &v
	}
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (string, error) {
	r.seq++
	clone := cloneUser(u)
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.users = append(r.users, clone)
	return clone.ID, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByExternalID(_ context.Context, externalID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ExternalID == externalID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, cloneUser(r.users[i]))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = cloneUser(u)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) CountAdmins(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			n++
		}
	}
	return n, nil
}

// seed inserts a user directly, bypassing the service layer.
func (r *stubUserRepo) seed(u domain.User) *domain.User {
	r.seq++
	clone := cloneUser(&u)
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users = append(r.users, clone)
	return cloneUser(clone)
}

type stubQuestionRepo struct {
	seq       int
	order     []string
	questions map[string]*domain.Question
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: make(map[string]*domain.Question)}
}

func cloneQuestion(q *domain.Question) *domain.Question {
	clone := *q
	clone.Tags = append([]string(nil), q.Tags...)
	return &clone
}

func (r *stubQuestionRepo) Insert(_ context.Context, q *domain.Question) (string, error) {
	r.seq++
	clone := cloneQuestion(q)
	clone.ID = fmt.Sprintf("q-%d", r.seq)
	r.questions[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return clone.ID, nil
}

func (r *stubQuestionRepo) FindByID(_ context.Context, id string) (*domain.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return cloneQuestion(q), nil
}

func (r *stubQuestionRepo) FindAll(_ context.Context) ([]*domain.Question, error) {
	out := make([]*domain.Question, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneQuestion(r.questions[id]))
	}
	return out, nil
}

func (r *stubQuestionRepo) FindByUser(_ context.Context, userID string) ([]*domain.Question, error) {
	var out []*domain.Question
	for _, id := range r.order {
		if q := r.questions[id]; q.UserID == userID {
			out = append(out, cloneQuestion(q))
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) FindByStatus(_ context.Context, status domain.QuestionStatus) ([]*domain.Question, error) {
	var out []*domain.Question
	for _, id := range r.order {
		if q := r.questions[id]; q.Status == status {
			out = append(out, cloneQuestion(q))
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) Update(_ context.Context, q *domain.Question) error {
	if _, ok := r.questions[q.ID]; !ok {
		return domain.ErrQuestionNotFound
	}
	r.questions[q.ID] = cloneQuestion(q)
	return nil
}

func (r *stubQuestionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubQuestionRepo) IncrementViews(_ context.Context, id string) (bool, error) {
	q, ok := r.questions[id]
	if !ok {
		return false, nil
	}
	q.Views++
	return true, nil
}

func (r *stubQuestionRepo) IncrementHelpful(_ context.Context, id string) (bool, error) {
	q, ok := r.questions[id]
	if !ok {
		return false, nil
	}
	q.Helpful++
	return true, nil
}

// seed inserts a question directly, bypassing the service layer.
func (r *stubQuestionRepo) seed(q domain.Question) *domain.Question {
	r.seq++
	clone := cloneQuestion(&q)
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("q-%d", r.seq)
	}
	r.questions[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneQuestion(clone)
}

// stubCache records aggregate cache traffic.
type stubCache struct {
	stats       *ports.AdminStats
	categories  []ports.CategoryCount
	invalidated int
}

func (c *stubCache) GetStats(_ context.Context) (*ports.AdminStats, error) { return c.stats, nil }

func (c *stubCache) SetStats(_ context.Context, stats *ports.AdminStats) error {
	c.stats = stats
	return nil
}

func (c *stubCache) GetCategories(_ context.Context) ([]ports.CategoryCount, error) {
	return c.categories, nil
}

func (c *stubCache) SetCategories(_ context.Context, counts []ports.CategoryCount) error {
	c.categories = counts
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.stats = nil
	c.categories = nil
	c.invalidated++
	return nil
}
