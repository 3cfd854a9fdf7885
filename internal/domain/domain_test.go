package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorClassification(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", NotFoundError{Resource: "journey"})
	if !IsNotFound(wrapped) {
		t.Fatalf("wrapped NotFoundError should be detected")
	}
	if IsValidation(wrapped) || IsUnauthorized(wrapped) || IsInternal(wrapped) {
		t.Fatalf("NotFoundError misclassified")
	}
	if wrapped.Error() != "create booking: journey not found" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}

	if !IsUnauthorized(UnauthorizedError{Msg: "Invalid token"}) {
		t.Fatalf("UnauthorizedError not detected")
	}
	if got := (UnauthorizedError{}).Error(); got != "unauthorized" {
		t.Fatalf("default unauthorized message %q", got)
	}

	cause := errors.New("boom")
	internal := InternalError{Err: cause}
	if !errors.Is(internal, cause) || internal.Error() != "internal error" {
		t.Fatalf("InternalError should unwrap to its cause")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	cases := []struct {
		err  ValidationError
		want string
	}{
		{ValidationError{Field: "origin", Msg: "too short"}, "origin: too short"},
		{ValidationError{Msg: "bad"}, "bad"},
		{ValidationError{Field: "kind"}, "invalid kind"},
		{ValidationError{}, "validation error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.May, 16)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-05-16"` {
		t.Fatalf("unexpected json %s", raw)
	}

	var back Date
	if err := json.Unmarshal([]byte(`"2025-07-10"`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.String() != "2025-07-10" {
		t.Fatalf("round trip got %s", back)
	}

	if err := json.Unmarshal([]byte(`"10/07/2025"`), &back); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if DateOf(time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC)).String() != "2025-01-02" {
		t.Fatalf("DateOf should truncate to the day")
	}
}
