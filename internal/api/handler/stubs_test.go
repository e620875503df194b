package handler

import (
	"context"

	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

// stubQuestionService records inputs and replays canned results so handler
// tests can assert on the wire contract alone.
type stubQuestionService struct {
	listInput   ports.ListQuestionsInput
	submitInput ports.SubmitQuestionInput
	mineInput   ports.MyQuestionsInput

	page     *ports.QuestionPage
	question *domain.Question
	counts   []ports.CategoryCount
	stats    *ports.AdminStats
	insertID string
	err      error

	viewsID   string
	helpfulID string
}

func (s *stubQuestionService) List(_ context.Context, input ports.ListQuestionsInput) (*ports.QuestionPage, error) {
	s.listInput = input
	return s.page, s.err
}

func (s *stubQuestionService) GetByID(_ context.Context, id string) (*domain.Question, error) {
	if s.question == nil {
		return nil, domain.ErrQuestionNotFound
	}
	return s.question, s.err
}

func (s *stubQuestionService) Categories(context.Context) ([]ports.CategoryCount, error) {
	return s.counts, s.err
}

func (s *stubQuestionService) Submit(_ context.Context, input ports.SubmitQuestionInput) (string, error) {
	s.submitInput = input
	return s.insertID, s.err
}

func (s *stubQuestionService) Mine(_ context.Context, input ports.MyQuestionsInput) (*ports.QuestionPage, error) {
	s.mineInput = input
	return s.page, s.err
}

func (s *stubQuestionService) Pending(_ context.Context, input ports.PendingQuestionsInput) (*ports.QuestionPage, error) {
	return s.page, s.err
}

func (s *stubQuestionService) Answer(context.Context, ports.AnswerQuestionInput) error {
	return s.err
}

func (s *stubQuestionService) Reject(context.Context, ports.RejectQuestionInput) error {
	return s.err
}

func (s *stubQuestionService) CreateAdmin(_ context.Context, input ports.CreateAdminQuestionInput) (string, error) {
	return s.insertID, s.err
}

func (s *stubQuestionService) ListAll(_ context.Context, input ports.ListAllQuestionsInput) (*ports.QuestionPage, error) {
	return s.page, s.err
}

func (s *stubQuestionService) Delete(context.Context, string, string) error {
	return s.err
}

func (s *stubQuestionService) Stats(context.Context, string) (*ports.AdminStats, error) {
	return s.stats, s.err
}

func (s *stubQuestionService) IncrementViews(_ context.Context, id string) error {
	s.viewsID = id
	return s.err
}

func (s *stubQuestionService) IncrementHelpful(_ context.Context, id string) error {
	s.helpfulID = id
	return s.err
}

type stubUserService struct {
	storeIdentity ports.Identity
	storeID       string
	current       *domain.User
	users         []*domain.User
	toggled       bool
	err           error
}

func (s *stubUserService) Store(_ context.Context, identity ports.Identity) (string, error) {
	s.storeIdentity = identity
	return s.storeID, s.err
}

func (s *stubUserService) Current(context.Context, string) (*domain.User, error) {
	return s.current, s.err
}

func (s *stubUserService) PromoteToAdmin(context.Context, string, string) error {
	return s.err
}

func (s *stubUserService) UpdateRole(context.Context, string, string, string) error {
	return s.err
}

func (s *stubUserService) ToggleStatus(context.Context, string, string) (bool, error) {
	return s.toggled, s.err
}

func (s *stubUserService) ListAll(context.Context, string) ([]*domain.User, error) {
	return s.users, s.err
}
