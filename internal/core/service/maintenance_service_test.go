package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

func newMaintenanceTestService(users *stubUserRepo, questions *stubQuestionRepo) *MaintenanceService {
	return NewMaintenanceService(users, questions, NewAccessPolicy(users), zerolog.Nop())
}

func TestMigrateData_FillsDefaults(t *testing.T) {
	users := newStubUserRepo()
	questions := newStubQuestionRepo()
	seedAdmin(users, "admin")
	legacyUser := users.seed(domain.User{ExternalID: "legacy"}) // no role, no isActive
	answered := questions.seed(domain.Question{Question: "a", Answer: "answered", UserID: "u9", Views: 4})
	unanswered := questions.seed(domain.Question{Question: "b"})
	modern := questions.seed(domain.Question{Question: "c", Status: domain.StatusApproved, Source: domain.SourceAdmin, Answer: "x"})

	svc := newMaintenanceTestService(users, questions)
	result, err := svc.MigrateData(context.Background(), "admin")
	if err != nil {
		t.Fatalf("MigrateData returned error: %v", err)
	}

	if result.UsersTotal != 2 || result.UsersUpdated != 1 {
		t.Fatalf("unexpected user counts: %+v", result)
	}
	if result.QuestionsTotal != 3 || result.QuestionsUpdated != 2 {
		t.Fatalf("unexpected question counts: %+v", result)
	}

	healed, _ := users.FindByID(context.Background(), legacyUser.ID)
	if healed.Role != domain.RoleUser || healed.IsActive == nil || !*healed.IsActive {
		t.Fatalf("legacy user not healed: %+v", healed)
	}

	q1, _ := questions.FindByID(context.Background(), answered.ID)
	if q1.Status != domain.StatusApproved || q1.Source != domain.SourceUser {
		t.Fatalf("answered legacy question healed wrong: %+v", q1)
	}
	if q1.Views != 4 {
		t.Fatalf("MigrateData must not touch counters, views=%d", q1.Views)
	}

	q2, _ := questions.FindByID(context.Background(), unanswered.ID)
	if q2.Status != domain.StatusPending || q2.Source != domain.SourceAdmin {
		t.Fatalf("unanswered legacy question healed wrong: %+v", q2)
	}

	q3, _ := questions.FindByID(context.Background(), modern.ID)
	if q3.Status != domain.StatusApproved || q3.Source != domain.SourceAdmin {
		t.Fatalf("modern question must be untouched: %+v", q3)
	}

	// The sweep is idempotent: a second run updates nothing.
	result, err = svc.MigrateData(context.Background(), "admin")
	if err != nil {
		t.Fatalf("second MigrateData returned error: %v", err)
	}
	if result.UsersUpdated != 0 || result.QuestionsUpdated != 0 {
		t.Fatalf("second sweep not idempotent: %+v", result)
	}
}

func TestFixExistingData_ResetsCounters(t *testing.T) {
	users := newStubUserRepo()
	questions := newStubQuestionRepo()
	seedAdmin(users, "admin")
	q := questions.seed(domain.Question{
		Question: "q", Status: domain.StatusApproved, Source: domain.SourceAdmin,
		Answer: "a", Views: 120, Helpful: 30,
	})

	svc := newMaintenanceTestService(users, questions)
	result, err := svc.FixExistingData(context.Background(), "admin")
	if err != nil {
		t.Fatalf("FixExistingData returned error: %v", err)
	}
	if result.QuestionsUpdated != 1 {
		t.Fatalf("counter reset should count as an update: %+v", result)
	}

	stored, _ := questions.FindByID(context.Background(), q.ID)
	if stored.Views != 0 || stored.Helpful != 0 {
		t.Fatalf("counters not reset: views=%d helpful=%d", stored.Views, stored.Helpful)
	}
}

func TestMaintenance_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	seedActiveUser(users, "regular")
	svc := newMaintenanceTestService(users, newStubQuestionRepo())

	if _, err := svc.FixExistingData(context.Background(), "regular"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("FixExistingData must be admin-only, got %v", err)
	}
	if _, err := svc.MigrateData(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("MigrateData must require authentication, got %v", err)
	}
}
