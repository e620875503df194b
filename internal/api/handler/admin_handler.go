package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deenanswers/qa-system/internal/core/ports"
)

// AdminHandler handles the moderation and maintenance routes. Authorization
// lives in the service layer; every operation here passes the caller's
// subject down and lets the access policy decide.
type AdminHandler struct {
	questions   ports.QuestionService
	maintenance ports.MaintenanceService
}

func NewAdminHandler(questions ports.QuestionService, maintenance ports.MaintenanceService) *AdminHandler {
	return &AdminHandler{questions: questions, maintenance: maintenance}
}

// Pending handles GET /v1/admin/questions/pending, the triage queue
// (oldest first).
//
// @Summary      List pending questions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (default 20)"
// @Success      200    {object}  listQuestionsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/admin/questions/pending [get]
func (h *AdminHandler) Pending(c echo.Context) error {
	page, err := h.questions.Pending(c.Request().Context(), ports.PendingQuestionsInput{
		Subject: ctxSubject(c),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// Answer handles PUT /v1/admin/questions/:id/answer. Answering always
// approves, even a previously rejected question.
//
// @Summary      Answer and approve a question
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path   string                 true  "Question id"
// @Param        body  body   answerQuestionRequest  true  "Answer"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/questions/{id}/answer [put]
func (h *AdminHandler) Answer(c echo.Context) error {
	var req answerQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.questions.Answer(c.Request().Context(), ports.AnswerQuestionInput{
		Subject: ctxSubject(c),
		ID:      c.Param("id"),
		Answer:  req.Answer,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Reject handles PUT /v1/admin/questions/:id/reject.
//
// @Summary      Reject a question with a reason
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path   string                 true  "Question id"
// @Param        body  body   rejectQuestionRequest  true  "Rejection reason"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/questions/{id}/reject [put]
func (h *AdminHandler) Reject(c echo.Context) error {
	var req rejectQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.questions.Reject(c.Request().Context(), ports.RejectQuestionInput{
		Subject: ctxSubject(c),
		ID:      c.Param("id"),
		Reason:  req.Reason,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Create handles POST /v1/admin/questions, an admin-authored question that
// goes live immediately.
//
// @Summary      Create a pre-approved question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuestionRequest  true  "Question and answer"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/admin/questions [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.questions.CreateAdmin(c.Request().Context(), ports.CreateAdminQuestionInput{
		Subject:  ctxSubject(c),
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// ListAll handles GET /v1/admin/questions (?status=pending|approved|rejected|all).
func (h *AdminHandler) ListAll(c echo.Context) error {
	page, err := h.questions.ListAll(c.Request().Context(), ports.ListAllQuestionsInput{
		Subject: ctxSubject(c),
		Status:  c.QueryParam("status"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// Delete handles DELETE /v1/admin/questions/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.questions.Delete(c.Request().Context(), ctxSubject(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Aggregate moderation statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.questions.Stats(c.Request().Context(), ctxSubject(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Fix handles POST /v1/admin/maintenance/fix: fills defaulted fields and
// resets the view and helpful counters.
func (h *AdminHandler) Fix(c echo.Context) error {
	result, err := h.maintenance.FixExistingData(c.Request().Context(), ctxSubject(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Migrate handles POST /v1/admin/maintenance/migrate: fills defaulted
// fields, counters untouched.
func (h *AdminHandler) Migrate(c echo.Context) error {
	result, err := h.maintenance.MigrateData(c.Request().Context(), ctxSubject(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
