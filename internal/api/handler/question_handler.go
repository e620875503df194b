package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deenanswers/qa-system/internal/core/ports"
)

// QuestionHandler handles the public and member-facing question routes.
type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// List handles GET /v1/questions.
//
// @Summary      List approved questions
// @Tags         questions
// @Produce      json
// @Param        category  query     string  false  "Category filter ('all' disables it)"
// @Param        search    query     string  false  "Substring match on question, answer and tags"
// @Param        sortBy    query     string  false  "views | helpful | newest | oldest"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (default 12)"
// @Success      200       {object}  listQuestionsResponse
// @Failure      500       {object}  errorResponse
// @Router       /v1/questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListQuestionsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		SortBy:   c.QueryParam("sortBy"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// Get handles GET /v1/questions/:id.
//
// @Summary      Get a single question
// @Tags         questions
// @Produce      json
// @Param        id   path      string  true  "Question id"
// @Success      200  {object}  questionResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/questions/{id} [get]
func (h *QuestionHandler) Get(c echo.Context) error {
	q, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponse(q))
}

// Categories handles GET /v1/questions/categories.
//
// @Summary      Category counts over all questions
// @Tags         questions
// @Produce      json
// @Success      200  {array}  ports.CategoryCount
// @Router       /v1/questions/categories [get]
func (h *QuestionHandler) Categories(c echo.Context) error {
	counts, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Submit handles POST /v1/questions.
//
// @Summary      Submit a question for review
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitQuestionRequest  true  "Question"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/questions [post]
func (h *QuestionHandler) Submit(c echo.Context) error {
	var req submitQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Submit(c.Request().Context(), ports.SubmitQuestionInput{
		Subject:  ctxSubject(c),
		Question: req.Question,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Mine handles GET /v1/me/questions. Anonymous callers get an empty page,
// not a 401.
//
// @Summary      List the caller's own submissions
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  listQuestionsResponse
// @Router       /v1/me/questions [get]
func (h *QuestionHandler) Mine(c echo.Context) error {
	page, err := h.service.Mine(c.Request().Context(), ports.MyQuestionsInput{
		Subject: ctxSubject(c),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// IncrementViews handles POST /v1/questions/:id/views. A missing id is a
// silent no-op.
func (h *QuestionHandler) IncrementViews(c echo.Context) error {
	if err := h.service.IncrementViews(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// IncrementHelpful handles POST /v1/questions/:id/helpful.
func (h *QuestionHandler) IncrementHelpful(c echo.Context) error {
	if err := h.service.IncrementHelpful(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an integer query parameter, returning zero when absent or
// malformed so the service applies its defaults.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
