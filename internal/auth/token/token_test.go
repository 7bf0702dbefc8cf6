package token

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	raw, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	subject, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if subject != "user-123" {
		t.Errorf("Expected subject user-123, got %s", subject)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	raw, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(raw); err == nil {
		t.Error("Expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	raw, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(raw); err == nil {
		t.Error("Expected error for mismatched signature, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); err == nil {
			t.Errorf("Expected error for malformed token %q, got nil", raw)
		}
	}
}
