package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type submitQuestionRequest struct {
	Question string   `json:"question" validate:"required,min=10"`
	Category string   `json:"category" validate:"required"`
	Tags     []string `json:"tags"`
}

type answerQuestionRequest struct {
	Answer string   `json:"answer" validate:"required"`
	Tags   []string `json:"tags"`
}

type rejectQuestionRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type createQuestionRequest struct {
	Question string   `json:"question" validate:"required"`
	Answer   string   `json:"answer"   validate:"required"`
	Category string   `json:"category" validate:"required"`
	Tags     []string `json:"tags"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes; status and source always carry the derived (healed) values.

type questionResponse struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Answer          string   `json:"answer"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Views           int64    `json:"views"`
	Helpful         int64    `json:"helpful"`
	CreatedAt       int64    `json:"createdAt"`
	UserID          string   `json:"userId,omitempty"`
	Status          string   `json:"status"`
	Source          string   `json:"source"`
	AnsweredBy      string   `json:"answeredBy,omitempty"`
	AnsweredAt      int64    `json:"answeredAt,omitempty"`
	RejectionReason string   `json:"rejectionReason,omitempty"`
}

type paginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type listQuestionsResponse struct {
	Data       []questionResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type userResponse struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  int64  `json:"createdAt"`
}

type toggleStatusResponse struct {
	IsActive bool `json:"isActive"`
}
