package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	valid := map[string]string{
		"jane@doe.com":             "jane@doe.com",
		"  Jane.Doe@Example.COM ":  "jane.doe@example.com",
		"first+tag@sub.domain.org": "first+tag@sub.domain.org",
		"a-b_c@my-host.io":         "a-b_c@my-host.io",
	}
	for in, want := range valid {
		email, err := NewEmail(in)
		if err != nil {
			t.Fatalf("NewEmail(%q) returned error: %v", in, err)
		}
		if email.String() != want {
			t.Fatalf("NewEmail(%q) = %q, want %q", in, email.String(), want)
		}
		again, err := NewEmail(email.String())
		if err != nil || again != email {
			t.Fatalf("normalized email %q did not round-trip: %v", email, err)
		}
	}

	cases := []struct {
		name string
		in   string
		msg  string
	}{
		{"empty", "", "Email must not be blank"},
		{"blank", "   \t", "Email must not be blank"},
		{"too long", strings.Repeat("a", 250) + "@x.com", "Email cannot exceed 254 characters"},
		{"no at", "janedoe.com", "Email format is invalid"},
		{"no domain dot", "jane@doe", "Email format is invalid"},
		{"long tld", "jane@doe.abcde", "Email format is invalid"},
		{"space inside", "jane doe@doe.com", "Email format is invalid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEmail(tc.in)
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			if err.Error() != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, err.Error())
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestNewName(t *testing.T) {
	for _, in := range []string{"John Doe", "Le-Compte", "allo", "a", "O'Neil", "Zoë", "José María"} {
		name, err := NewName(in)
		if err != nil {
			t.Fatalf("NewName(%q) returned error: %v", in, err)
		}
		if name.String() != in {
			t.Fatalf("NewName(%q) = %q", in, name.String())
		}
	}

	trimmed, err := NewName("  Le-Compte       ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trimmed.String() != "Le-Compte" {
		t.Fatalf("expected trimmed name, got %q", trimmed.String())
	}

	a, _ := NewName("John Doe")
	b, _ := NewName("John Doe     ")
	if a != b {
		t.Fatalf("expected equal names after trimming")
	}

	cases := []struct {
		in  string
		msg string
	}{
		{"123", "Name format is invalid"},
		{"John23", "Name format is invalid"},
		{"Aa***", "Name format is invalid"},
		{"Allo oui$", "Name format is invalid"},
		{"", "Name must not be blank"},
		{"        ", "Name must not be blank"},
		{"\t\t", "Name must not be blank"},
		{"\n", "Name must not be blank"},
		{strings.Repeat("a", 300), "Name is too long"},
		{strings.Repeat("1", 129), "Name is too long"},
	}
	for _, tc := range cases {
		_, err := NewName(tc.in)
		if err == nil || err.Error() != tc.msg {
			t.Fatalf("NewName(%q): expected %q, got %v", tc.in, tc.msg, err)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewName(%q): expected ErrInvalidArgument", tc.in)
		}
	}
}

func TestName_Capitalized(t *testing.T) {
	cases := map[string]string{
		"hugo":           "Hugo",
		"hugo boss":      "Hugo Boss",
		"hugo      boSs": "Hugo BoSs",
		"hugo\tboss":     "Hugo Boss",
		"Hugo Boss":      "Hugo Boss",
		"élodie":         "Élodie",
	}
	for in, want := range cases {
		name, err := NewName(in)
		if err != nil {
			t.Fatalf("NewName(%q) returned error: %v", in, err)
		}
		if got := name.Capitalized(); got != want {
			t.Fatalf("Capitalized(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewAge(t *testing.T) {
	for v := MinAge; v <= MaxAge; v++ {
		age, err := NewAge(v)
		if err != nil {
			t.Fatalf("NewAge(%d) returned error: %v", v, err)
		}
		if age.Int() != v {
			t.Fatalf("NewAge(%d) = %d", v, age.Int())
		}
	}

	for _, v := range []int{-1, 0, 2, 12, 121, 150, 1 << 30} {
		_, err := NewAge(v)
		if err == nil {
			t.Fatalf("NewAge(%d) expected error", v)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewAge(%d) expected ErrInvalidArgument, got %v", v, err)
		}
	}

	_, err := NewAge(12)
	if err.Error() != "12 is not between 13 and 120" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestNewUserID(t *testing.T) {
	id, err := NewUserID("user_id")
	if err != nil || id.String() != "user_id" {
		t.Fatalf("unexpected result: %v %q", err, id)
	}

	for _, in := range []string{"", "   ", "\n"} {
		_, err := NewUserID(in)
		if err == nil || err.Error() != "UserId must not be blank" {
			t.Fatalf("NewUserID(%q): unexpected error %v", in, err)
		}
	}

	a, b := GenerateUserID(), GenerateUserID()
	if a.String() == "" || a == b {
		t.Fatalf("expected distinct generated ids, got %q and %q", a, b)
	}
}

func TestNewPasswordHash(t *testing.T) {
	hash, err := NewPasswordHash("$2a$10$abcdefghijklmnopqrstuv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash.Value() != "$2a$10$abcdefghijklmnopqrstuv" {
		t.Fatalf("unexpected value %q", hash.Value())
	}
	if hash.String() != "PasswordHash(***)" {
		t.Fatalf("expected redacted String, got %q", hash.String())
	}

	if _, err := NewPasswordHash("  "); err == nil || err.Error() != "Password must not be blank" {
		t.Fatalf("expected blank error, got %v", err)
	}
}
