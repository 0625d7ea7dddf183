package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}

	notFound := NotFound("user_id")
	if got := Classify(notFound); got != notFound {
		t.Fatalf("expected pass-through, got %v", got)
	}

	wrapped := fmt.Errorf("lookup: %w", notFound)
	if got := Classify(wrapped); got != notFound {
		t.Fatalf("expected wrapped UserError to pass through, got %v", got)
	}

	_, argErr := NewAge(2)
	got := Classify(argErr)
	if got.Kind != KindInvalidData {
		t.Fatalf("expected invalid data, got %v", got.Kind)
	}
	if got.Error() != "2 is not between 13 and 120" {
		t.Fatalf("expected cause message, got %q", got.Error())
	}
	if !errors.Is(got, ErrInvalidArgument) {
		t.Fatalf("expected cause to stay reachable")
	}

	boom := errors.New("connection refused")
	got = Classify(boom)
	if got.Kind != KindUnknown || !errors.Is(got, boom) {
		t.Fatalf("expected unknown wrapping cause, got %+v", got)
	}
}

func TestUserError_IsMatchesKind(t *testing.T) {
	email, _ := NewEmail("jane@doe.com")

	cases := []struct {
		err    error
		target error
	}{
		{AlreadyExists(email), ErrUserExists},
		{NotFound("missing"), ErrUserNotFound},
		{InvalidData(errors.New("bad")), ErrInvalidUserData},
		{Unknown(errors.New("boom")), ErrUnknown},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.target) {
			t.Fatalf("expected %v to match %v", tc.err, tc.target)
		}
		if errors.Is(tc.err, ErrUnknown) && tc.target != ErrUnknown {
			t.Fatalf("%v should not match ErrUnknown", tc.err)
		}
	}
}

func TestUserError_Messages(t *testing.T) {
	email, _ := NewEmail("jane@doe.com")

	if got := AlreadyExists(email).Error(); got != "user already exists with email jane@doe.com" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := NotFound("missing").Error(); got != "user not found with id missing" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := Unknown(errors.New("boom")).Error(); got != "boom" {
		t.Fatalf("unexpected message %q", got)
	}
	if NotFound("missing").ID != "missing" {
		t.Fatalf("expected id to be carried")
	}
	if AlreadyExists(email).Email != email {
		t.Fatalf("expected email to be carried")
	}
}
