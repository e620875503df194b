package domain

import "testing"

func TestQuestion_EffectiveStatus(t *testing.T) {
	cases := []struct {
		name string
		q    Question
		want QuestionStatus
	}{
		{"explicit approved", Question{Status: StatusApproved}, StatusApproved},
		{"explicit rejected", Question{Status: StatusRejected, Answer: "x"}, StatusRejected},
		{"legacy with answer", Question{Answer: "some answer"}, StatusApproved},
		{"legacy without answer", Question{}, StatusPending},
	}

	for _, tc := range cases {
		if got := tc.q.EffectiveStatus(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestQuestion_EffectiveSource(t *testing.T) {
	cases := []struct {
		name string
		q    Question
		want QuestionSource
	}{
		{"explicit user", Question{Source: SourceUser}, SourceUser},
		{"explicit admin", Question{Source: SourceAdmin, UserID: "u1"}, SourceAdmin},
		{"legacy owned", Question{UserID: "u1"}, SourceUser},
		{"legacy unowned", Question{}, SourceAdmin},
	}

	for _, tc := range cases {
		if got := tc.q.EffectiveSource(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestUser_Defaults(t *testing.T) {
	var u User
	if u.EffectiveRole() != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, u.EffectiveRole())
	}
	if !u.EffectiveActive() {
		t.Fatalf("expected absent isActive to default to true")
	}
	if u.IsAdmin() {
		t.Fatalf("default user must not be admin")
	}

	admin := User{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Fatalf("active admin expected")
	}

	disabled := User{Role: RoleAdmin, IsActive: Active(false)}
	if disabled.IsAdmin() {
		t.Fatalf("deactivated admin must not count as admin")
	}
}
