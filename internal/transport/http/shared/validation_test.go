package shared

import (
	"net/http/httptest"
	"testing"
)

func TestValidatorCollectsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("DeptName", "", "is required")
	v.MaxLen("DeptName", "x", 100)
	v.Email("Email", "not-an-email")
	v.Enum("Gender", "other", []string{"male", "female"}, "must be male or female")

	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Date("PayDate", "2024-01-31"); !ok {
		t.Fatal("expected valid date")
	}
	if _, ok := v.Date("PayDate", "31/01/2024"); ok {
		t.Fatal("expected invalid date")
	}
	if !v.HasIssues() {
		t.Fatal("expected issue recorded")
	}
}

func TestValidatorClock(t *testing.T) {
	valid := "09:00:00"
	short := "09:00"
	invalid := "9am"

	v := NewValidator()
	v.Clock("timeIn", nil)
	v.Clock("timeIn", &valid)
	v.Clock("timeIn", &short)
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}
	v.Clock("timeOut", &invalid)
	if !v.HasIssues() {
		t.Fatal("expected clock issue")
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("empty validator must not reject")
	}

	v.Add("Score", "out of range")
	rec = httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
