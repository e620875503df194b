package domain

// QuestionStatus is the review state of a question.
type QuestionStatus string

const (
	StatusPending  QuestionStatus = "pending"
	StatusApproved QuestionStatus = "approved"
	StatusRejected QuestionStatus = "rejected"
)

// QuestionSource records who authored a question.
type QuestionSource string

const (
	SourceUser  QuestionSource = "user"
	SourceAdmin QuestionSource = "admin"
)

// Question is the core aggregate. Status and Source may be empty on
// documents written before those fields existed; always read them through
// EffectiveStatus and EffectiveSource.
type Question struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	Question        string         `json:"question" bson:"question"`
	Answer          string         `json:"answer" bson:"answer"`
	Category        string         `json:"category" bson:"category"`
	Tags            []string       `json:"tags" bson:"tags"`
	Views           int64          `json:"views" bson:"views"`
	Helpful         int64          `json:"helpful" bson:"helpful"`
	CreatedAt       int64          `json:"createdAt" bson:"created_at"` // epoch millis
	UserID          string         `json:"userId,omitempty" bson:"user_id,omitempty"`
	Status          QuestionStatus `json:"status,omitempty" bson:"status,omitempty"`
	Source          QuestionSource `json:"source,omitempty" bson:"source,omitempty"`
	AnsweredBy      string         `json:"answeredBy,omitempty" bson:"answered_by,omitempty"`
	AnsweredAt      int64          `json:"answeredAt,omitempty" bson:"answered_at,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty" bson:"rejection_reason,omitempty"`
}

// EffectiveStatus resolves the review state for legacy documents: a question
// with an answer is approved, otherwise it is still pending.
func (q *Question) EffectiveStatus() QuestionStatus {
	if q.Status != "" {
		return q.Status
	}
	if q.Answer != "" {
		return StatusApproved
	}
	return StatusPending
}

// EffectiveSource resolves authorship for legacy documents: a question with
// an owning user was submitted by that user, anything else is admin content.
func (q *Question) EffectiveSource() QuestionSource {
	if q.Source != "" {
		return q.Source
	}
	if q.UserID != "" {
		return SourceUser
	}
	return SourceAdmin
}

// Owned reports whether the question has a submitting user attached.
func (q *Question) Owned() bool {
	return q.UserID != ""
}
