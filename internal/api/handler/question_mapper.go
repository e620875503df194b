package handler

import (
	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

// --- Domain → HTTP response ---

func toQuestionResponse(q *domain.Question) questionResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	return questionResponse{
		ID:              q.ID,
		Question:        q.Question,
		Answer:          q.Answer,
		Category:        q.Category,
		Tags:            tags,
		Views:           q.Views,
		Helpful:         q.Helpful,
		CreatedAt:       q.CreatedAt,
		UserID:          q.UserID,
		Status:          string(q.EffectiveStatus()),
		Source:          string(q.EffectiveSource()),
		AnsweredBy:      q.AnsweredBy,
		AnsweredAt:      q.AnsweredAt,
		RejectionReason: q.RejectionReason,
	}
}

func toListResponse(page *ports.QuestionPage) listQuestionsResponse {
	items := make([]questionResponse, len(page.Questions))
	for i, q := range page.Questions {
		items[i] = toQuestionResponse(q)
	}
	return listQuestionsResponse{
		Data: items,
		Pagination: paginationResponse{
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
			HasNext:    page.Pagination.HasNext,
			HasPrev:    page.Pagination.HasPrev,
		},
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Name:       u.Name,
		ImageURL:   u.ImageURL,
		Role:       u.EffectiveRole(),
		IsActive:   u.EffectiveActive(),
		CreatedAt:  u.CreatedAt,
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
