package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{Validation("bad input"), KindValidation},
		{Auth("no session"), KindAuth},
		{Forbidden("admin only"), KindForbidden},
		{NotFound("missing"), KindNotFound},
		{Conflict("duplicate"), KindConflict},
		{Persistence("store down", errors.New("io")), KindPersistence},
		{errors.New("raw"), KindPersistence},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.kind {
			t.Errorf("KindOf(%v) = %v, want %v", tc.err, got, tc.kind)
		}
	}
}

func TestMessageHidesWrappedError(t *testing.T) {
	err := Persistence("store failure", errors.New("connection refused"))
	if Message(err) != "store failure" {
		t.Fatalf("client message leaked: %q", Message(err))
	}
	if inner := errors.Unwrap(err); inner == nil || inner.Error() != "connection refused" {
		t.Fatalf("wrapped cause lost: %v", inner)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", NotFound("order not found"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("kind lost through wrapping")
	}
	if Message(err) != "order not found" {
		t.Fatalf("message lost through wrapping: %q", Message(err))
	}
}
