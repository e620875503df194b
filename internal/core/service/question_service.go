package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/deenanswers/qa-system/internal/api/metrics"
	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

const (
	defaultListLimit   = 12
	defaultMineLimit   = 10
	defaultTriageLimit = 20
)

// AggregateCache caches full-collection aggregations (stats, category
// counts). A miss is reported as a nil value with no error; cache failures
// never fail the request.
type AggregateCache interface {
	GetStats(ctx context.Context) (*ports.AdminStats, error)
	SetStats(ctx context.Context, stats *ports.AdminStats) error
	GetCategories(ctx context.Context) ([]ports.CategoryCount, error)
	SetCategories(ctx context.Context, counts []ports.CategoryCount) error
	// Invalidate drops every cached aggregate after a question mutation.
	Invalidate(ctx context.Context) error
}

type QuestionService struct {
	repo   ports.QuestionRepository
	policy *AccessPolicy
	cache  AggregateCache // optional
	logger zerolog.Logger
}

func NewQuestionService(repo ports.QuestionRepository, policy *AccessPolicy, cache AggregateCache, logger zerolog.Logger) *QuestionService {
	return &QuestionService{repo: repo, policy: policy, cache: cache, logger: logger}
}

// List returns one page of approved questions, optionally filtered by
// category and search term. Filtering happens over the full set so legacy
// documents without an explicit status are classified by derivation.
func (s *QuestionService) List(ctx context.Context, input ports.ListQuestionsInput) (*ports.QuestionPage, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	questions := make([]*domain.Question, 0, len(all))
	for _, q := range all {
		if q.EffectiveStatus() == domain.StatusApproved {
			questions = append(questions, q)
		}
	}

	if input.Category != "" && input.Category != ports.CategoryAll {
		questions = filterQuestions(questions, func(q *domain.Question) bool {
			return q.Category == input.Category
		})
	}

	if input.Search != "" {
		needle := strings.ToLower(input.Search)
		questions = filterQuestions(questions, func(q *domain.Question) bool {
			return matchesSearch(q, needle)
		})
	}

	sortQuestions(questions, input.SortBy)

	page := paginate(questions, input.Page, defaultIfZero(input.Limit, defaultListLimit))
	return page, nil
}

// GetByID fetches a single question.
func (s *QuestionService) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	return s.repo.FindByID(ctx, id)
}

// Categories aggregates question counts per category, serving from the
// cache when possible.
func (s *QuestionService) Categories(ctx context.Context) ([]ports.CategoryCount, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCategories(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed, recomputing")
		} else if cached != nil {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	for _, q := range all {
		byName[q.Category]++
	}

	counts := make([]ports.CategoryCount, 0, len(byName))
	for name, count := range byName {
		counts = append(counts, ports.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })

	if s.cache != nil {
		if err := s.cache.SetCategories(ctx, counts); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return counts, nil
}

// Submit creates a pending question owned by the authenticated caller.
func (s *QuestionService) Submit(ctx context.Context, input ports.SubmitQuestionInput) (string, error) {
	user, err := s.policy.RequireAuthenticated(ctx, input.Subject)
	if err != nil {
		return "", err
	}

	question := &domain.Question{
		Question:  input.Question,
		Answer:    "", // empty until an admin answers
		Category:  input.Category,
		Tags:      input.Tags,
		CreatedAt: time.Now().UnixMilli(),
		UserID:    user.ID,
		Status:    domain.StatusPending,
		Source:    domain.SourceUser,
	}
	if question.Tags == nil {
		question.Tags = []string{}
	}

	id, err := s.repo.Insert(ctx, question)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert question")
		return "", err
	}

	s.invalidateAggregates(ctx)
	metrics.QuestionsCreatedTotal.WithLabelValues(string(domain.SourceUser)).Inc()
	s.logger.Info().Str("question_id", id).Str("user_id", user.ID).Str("category", input.Category).Msg("question submitted")
	return id, nil
}

// Mine pages through the caller's own submissions, newest first. An
// anonymous or unprovisioned caller gets an empty page, not a failure, so
// the front-end can poll without a session.
func (s *QuestionService) Mine(ctx context.Context, input ports.MyQuestionsInput) (*ports.QuestionPage, error) {
	limit := defaultIfZero(input.Limit, defaultMineLimit)

	user, err := s.policy.CurrentUser(ctx, input.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return paginate(nil, input.Page, limit), nil
	}

	questions, err := s.repo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	sortQuestions(questions, ports.SortNewest)
	return paginate(questions, input.Page, limit), nil
}

// Pending pages through the admin triage queue, oldest first.
func (s *QuestionService) Pending(ctx context.Context, input ports.PendingQuestionsInput) (*ports.QuestionPage, error) {
	if _, err := s.policy.RequireAdmin(ctx, input.Subject); err != nil {
		return nil, err
	}

	questions, err := s.repo.FindByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	sortQuestions(questions, ports.SortOldest)
	return paginate(questions, input.Page, defaultIfZero(input.Limit, defaultTriageLimit)), nil
}

// Answer sets an answer on a question and approves it, unconditionally
// overwriting any prior rejection. Tags are replaced only when new tags are
// supplied.
func (s *QuestionService) Answer(ctx context.Context, input ports.AnswerQuestionInput) error {
	admin, err := s.policy.RequireAdmin(ctx, input.Subject)
	if err != nil {
		return err
	}

	question, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	question.Answer = input.Answer
	if input.Tags != nil {
		question.Tags = input.Tags
	}
	question.AnsweredBy = admin.ID
	question.AnsweredAt = time.Now().UnixMilli()
	question.Status = domain.StatusApproved

	if err := s.repo.Update(ctx, question); err != nil {
		return err
	}

	s.invalidateAggregates(ctx)
	metrics.QuestionsAnsweredTotal.Inc()
	s.logger.Info().Str("question_id", input.ID).Str("answered_by", admin.ID).Msg("question answered")
	return nil
}

// Reject marks a question rejected with a reason. An existing answer is
// left in place.
func (s *QuestionService) Reject(ctx context.Context, input ports.RejectQuestionInput) error {
	if _, err := s.policy.RequireAdmin(ctx, input.Subject); err != nil {
		return err
	}

	question, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	question.Status = domain.StatusRejected
	question.RejectionReason = input.Reason

	if err := s.repo.Update(ctx, question); err != nil {
		return err
	}

	s.invalidateAggregates(ctx)
	metrics.QuestionsRejectedTotal.Inc()
	s.logger.Info().Str("question_id", input.ID).Msg("question rejected")
	return nil
}

// CreateAdmin creates a pre-approved, admin-authored question with no
// owning user.
func (s *QuestionService) CreateAdmin(ctx context.Context, input ports.CreateAdminQuestionInput) (string, error) {
	if _, err := s.policy.RequireAdmin(ctx, input.Subject); err != nil {
		return "", err
	}

	question := &domain.Question{
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		Tags:      input.Tags,
		CreatedAt: time.Now().UnixMilli(),
		Status:    domain.StatusApproved,
		Source:    domain.SourceAdmin,
	}
	if question.Tags == nil {
		question.Tags = []string{}
	}

	id, err := s.repo.Insert(ctx, question)
	if err != nil {
		return "", err
	}

	s.invalidateAggregates(ctx)
	metrics.QuestionsCreatedTotal.WithLabelValues(string(domain.SourceAdmin)).Inc()
	return id, nil
}

// ListAll pages through questions of any status, newest first.
func (s *QuestionService) ListAll(ctx context.Context, input ports.ListAllQuestionsInput) (*ports.QuestionPage, error) {
	if _, err := s.policy.RequireAdmin(ctx, input.Subject); err != nil {
		return nil, err
	}

	var questions []*domain.Question
	var err error
	if input.Status != "" && input.Status != ports.CategoryAll {
		questions, err = s.repo.FindByStatus(ctx, domain.QuestionStatus(input.Status))
	} else {
		questions, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	sortQuestions(questions, ports.SortNewest)
	return paginate(questions, input.Page, defaultIfZero(input.Limit, defaultTriageLimit)), nil
}

// Delete hard-deletes a question. A missing id is reported as not found.
func (s *QuestionService) Delete(ctx context.Context, subject, id string) error {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateAggregates(ctx)
	metrics.QuestionsDeletedTotal.Inc()
	s.logger.Info().Str("question_id", id).Msg("question deleted")
	return nil
}

// Stats aggregates counters over the full question set in a single pass,
// serving from the cache when possible.
func (s *QuestionService) Stats(ctx context.Context, subject string) (*ports.AdminStats, error) {
	if _, err := s.policy.RequireAdmin(ctx, subject); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetStats(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, recomputing")
		} else if cached != nil {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.AdminStats{Total: int64(len(all))}
	for _, q := range all {
		switch q.EffectiveStatus() {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusApproved:
			stats.Approved++
		case domain.StatusRejected:
			stats.Rejected++
		}
		switch q.EffectiveSource() {
		case domain.SourceUser:
			stats.UserQuestions++
		case domain.SourceAdmin:
			stats.AdminQuestions++
		}
		stats.TotalViews += q.Views
		stats.TotalHelpful += q.Helpful
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// IncrementViews adds one view. A missing id is a silent no-op.
func (s *QuestionService) IncrementViews(ctx context.Context, id string) error {
	matched, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return err
	}
	if matched {
		metrics.CounterIncrementsTotal.WithLabelValues("views").Inc()
	}
	return nil
}

// IncrementHelpful adds one helpful vote. A missing id is a silent no-op.
// Duplicate votes are only guarded client-side; the counter is a soft
// metric, not a security boundary.
func (s *QuestionService) IncrementHelpful(ctx context.Context, id string) error {
	matched, err := s.repo.IncrementHelpful(ctx, id)
	if err != nil {
		return err
	}
	if matched {
		metrics.CounterIncrementsTotal.WithLabelValues("helpful").Inc()
	}
	return nil
}

func (s *QuestionService) invalidateAggregates(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("aggregate cache invalidation failed")
	}
}

// --- listing helpers ---

func filterQuestions(qs []*domain.Question, keep func(*domain.Question) bool) []*domain.Question {
	out := qs[:0:0]
	for _, q := range qs {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// matchesSearch reports whether the lowercased needle occurs in the
// question text, answer text, or any tag.
func matchesSearch(q *domain.Question, needle string) bool {
	if strings.Contains(strings.ToLower(q.Question), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Answer), needle) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// sortQuestions orders in place: views and helpful descending, newest by
// creation time descending, anything else oldest first. The sort is stable
// so equal keys keep their relative order.
func sortQuestions(qs []*domain.Question, sortBy string) {
	switch sortBy {
	case ports.SortViews:
		sort.SliceStable(qs, func(i, j int) bool { return qs[i].Views > qs[j].Views })
	case ports.SortHelpful:
		sort.SliceStable(qs, func(i, j int) bool { return qs[i].Helpful > qs[j].Helpful })
	case ports.SortNewest:
		sort.SliceStable(qs, func(i, j int) bool { return qs[i].CreatedAt > qs[j].CreatedAt })
	default:
		sort.SliceStable(qs, func(i, j int) bool { return qs[i].CreatedAt < qs[j].CreatedAt })
	}
}

// paginate slices one page out of the already-filtered, already-sorted set.
// An out-of-range page yields an empty slice, never an error.
func paginate(qs []*domain.Question, page, limit int) *ports.QuestionPage {
	if page < 1 {
		page = 1
	}

	total := len(qs)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]*domain.Question, end-start)
	copy(items, qs[start:end])

	return &ports.QuestionPage{
		Questions: items,
		Pagination: ports.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}

func defaultIfZero(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
