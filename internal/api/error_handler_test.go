package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrAccountDisabled, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrQuestionNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("resolve caller: %w", domain.ErrUnauthenticated), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		rec := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid payload") {
		t.Fatalf("message lost: %s", rec.Body.String())
	}
}

func TestErrorHandler_UnknownErrorsAreOpaque(t *testing.T) {
	rec := renderError(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "socket") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}
