package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

func TestAccessPolicy_CurrentUser(t *testing.T) {
	users := newStubUserRepo()
	seeded := seedActiveUser(users, "sub-1")
	policy := NewAccessPolicy(users)

	user, err := policy.CurrentUser(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if user == nil || user.ID != seeded.ID {
		t.Fatalf("expected user %s, got %+v", seeded.ID, user)
	}

	// Anonymous and unprovisioned callers both resolve to nil, no error.
	for _, subject := range []string{"", "unknown"} {
		user, err := policy.CurrentUser(context.Background(), subject)
		if err != nil {
			t.Fatalf("subject %q: unexpected error: %v", subject, err)
		}
		if user != nil {
			t.Fatalf("subject %q: expected nil user, got %+v", subject, user)
		}
	}
}

func TestAccessPolicy_IsAdmin(t *testing.T) {
	users := newStubUserRepo()
	seedAdmin(users, "admin")
	seedActiveUser(users, "regular")
	users.seed(domain.User{ExternalID: "inactive-admin", Role: domain.RoleAdmin, IsActive: domain.Active(false)})
	policy := NewAccessPolicy(users)

	cases := []struct {
		subject string
		want    bool
	}{
		{"admin", true},
		{"regular", false},
		{"inactive-admin", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := policy.IsAdmin(context.Background(), tc.subject)
		if err != nil {
			t.Fatalf("subject %q: unexpected error: %v", tc.subject, err)
		}
		if got != tc.want {
			t.Fatalf("subject %q: IsAdmin = %v, want %v", tc.subject, got, tc.want)
		}
	}
}

func TestAccessPolicy_RequireAuthenticated(t *testing.T) {
	users := newStubUserRepo()
	seedActiveUser(users, "active")
	users.seed(domain.User{ExternalID: "disabled", Role: domain.RoleUser, IsActive: domain.Active(false)})
	policy := NewAccessPolicy(users)

	if _, err := policy.RequireAuthenticated(context.Background(), "active"); err != nil {
		t.Fatalf("active caller rejected: %v", err)
	}
	if _, err := policy.RequireAuthenticated(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := policy.RequireAuthenticated(context.Background(), "disabled"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAccessPolicy_RequireAdmin(t *testing.T) {
	users := newStubUserRepo()
	seedAdmin(users, "admin")
	seedActiveUser(users, "regular")
	users.seed(domain.User{ExternalID: "inactive-admin", Role: domain.RoleAdmin, IsActive: domain.Active(false)})
	policy := NewAccessPolicy(users)

	if _, err := policy.RequireAdmin(context.Background(), "admin"); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if _, err := policy.RequireAdmin(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := policy.RequireAdmin(context.Background(), "regular"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for regular user, got %v", err)
	}
	if _, err := policy.RequireAdmin(context.Background(), "inactive-admin"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for deactivated admin, got %v", err)
	}
}

func TestAccessPolicy_RequireOwnerOrAdmin(t *testing.T) {
	users := newStubUserRepo()
	owner := seedActiveUser(users, "owner")
	seedActiveUser(users, "stranger")
	seedAdmin(users, "admin")
	policy := NewAccessPolicy(users)

	if _, err := policy.RequireOwnerOrAdmin(context.Background(), "owner", owner.ID); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	if _, err := policy.RequireOwnerOrAdmin(context.Background(), "admin", owner.ID); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if _, err := policy.RequireOwnerOrAdmin(context.Background(), "stranger", owner.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := policy.RequireOwnerOrAdmin(context.Background(), "", owner.ID); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
