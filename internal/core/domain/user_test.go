package domain

import (
	"testing"
	"time"
)

func mustName(t *testing.T, v string) Name {
	t.Helper()
	n, err := NewName(v)
	if err != nil {
		t.Fatalf("NewName(%q): %v", v, err)
	}
	return n
}

func mustEmail(t *testing.T, v string) Email {
	t.Helper()
	e, err := NewEmail(v)
	if err != nil {
		t.Fatalf("NewEmail(%q): %v", v, err)
	}
	return e
}

func mustAge(t *testing.T, v int) Age {
	t.Helper()
	a, err := NewAge(v)
	if err != nil {
		t.Fatalf("NewAge(%d): %v", v, err)
	}
	return a
}

func mustHash(t *testing.T, v string) PasswordHash {
	t.Helper()
	h, err := NewPasswordHash(v)
	if err != nil {
		t.Fatalf("NewPasswordHash: %v", err)
	}
	return h
}

func restoredUser(t *testing.T, at time.Time) User {
	t.Helper()
	id, err := NewUserID("user_id")
	if err != nil {
		t.Fatalf("NewUserID: %v", err)
	}
	return RestoreUser(id, mustName(t, "jane"), mustName(t, "doe"), mustEmail(t, "jane@doe.com"),
		mustAge(t, 25), mustHash(t, "passwordhash"), at, at)
}

func TestNewUser(t *testing.T) {
	before := time.Now().UTC()
	u := NewUser(mustName(t, "Jane"), mustName(t, "Doe"), mustEmail(t, "jane@doe.com"), mustAge(t, 25), mustHash(t, "hash"))

	if u.ID().String() == "" {
		t.Fatalf("expected generated id")
	}
	if !u.CreatedAt().Equal(u.UpdatedAt()) {
		t.Fatalf("expected createdAt == updatedAt, got %v and %v", u.CreatedAt(), u.UpdatedAt())
	}
	if u.CreatedAt().Before(before) {
		t.Fatalf("createdAt %v is before test start %v", u.CreatedAt(), before)
	}

	other := NewUser(u.FirstName(), u.LastName(), u.Email(), u.Age(), u.PasswordHash())
	if other.ID() == u.ID() {
		t.Fatalf("expected distinct ids")
	}
}

func TestRestoreUser_FieldsEqualInputs(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	id, _ := NewUserID("b59525a6-2b49-463a-97f2-5a9711c240d7")
	first, last := mustName(t, "hugo"), mustName(t, "boss")
	email, age, hash := mustEmail(t, "hugo@boss.com"), mustAge(t, 40), mustHash(t, "h")

	u := RestoreUser(id, first, last, email, age, hash, created, updated)

	if u.ID() != id || u.FirstName() != first || u.LastName() != last || u.Email() != email ||
		u.Age() != age || u.PasswordHash() != hash {
		t.Fatalf("restored fields differ from inputs: %+v", u)
	}
	if !u.CreatedAt().Equal(created) || !u.UpdatedAt().Equal(updated) {
		t.Fatalf("restored timestamps differ: %v %v", u.CreatedAt(), u.UpdatedAt())
	}
	if u.FullName() != "hugo boss" {
		t.Fatalf("unexpected full name %q", u.FullName())
	}
	if u.FullNameCapitalized() != "Hugo Boss" {
		t.Fatalf("unexpected capitalized full name %q", u.FullNameCapitalized())
	}
}

func TestUser_UpdateWithoutChanges(t *testing.T) {
	at := time.Now().UTC().Add(-time.Hour)
	u := restoredUser(t, at)

	next := u.Update(UserChanges{})

	if !next.UpdatedAt().After(u.UpdatedAt()) {
		t.Fatalf("expected updatedAt to advance, got %v", next.UpdatedAt())
	}
	if next.ID() != u.ID() || !next.CreatedAt().Equal(u.CreatedAt()) {
		t.Fatalf("id or createdAt changed")
	}
	if next.FirstName() != u.FirstName() || next.LastName() != u.LastName() || next.Email() != u.Email() ||
		next.Age() != u.Age() || next.PasswordHash() != u.PasswordHash() {
		t.Fatalf("fields changed on empty update")
	}
	if !u.UpdatedAt().Equal(at) {
		t.Fatalf("receiver was mutated")
	}
}

func TestUser_UpdateSingleField(t *testing.T) {
	at := time.Now().UTC().Add(-time.Hour)
	u := restoredUser(t, at)

	email := mustEmail(t, "new@doe.com")
	next := u.Update(UserChanges{Email: &email})

	if next.Email() != email {
		t.Fatalf("expected email %q, got %q", email, next.Email())
	}
	if u.Email().String() != "jane@doe.com" {
		t.Fatalf("receiver was mutated")
	}
	if next.FirstName() != u.FirstName() || next.LastName() != u.LastName() ||
		next.Age() != u.Age() || next.PasswordHash() != u.PasswordHash() {
		t.Fatalf("unexpected field change")
	}
	if next.ID() != u.ID() || !next.CreatedAt().Equal(at) {
		t.Fatalf("id or createdAt changed")
	}
	if !next.UpdatedAt().After(at) {
		t.Fatalf("updatedAt not refreshed")
	}
}

func TestUser_UpdateAllFields(t *testing.T) {
	u := restoredUser(t, time.Now().UTC().Add(-time.Hour))

	first, last := mustName(t, "John"), mustName(t, "Smith")
	email, age, hash := mustEmail(t, "john@smith.com"), mustAge(t, 30), mustHash(t, "other")
	next := u.Update(UserChanges{FirstName: &first, LastName: &last, Email: &email, Age: &age, PasswordHash: &hash})

	if next.FirstName() != first || next.LastName() != last || next.Email() != email ||
		next.Age() != age || next.PasswordHash() != hash {
		t.Fatalf("not all fields replaced: %+v", next)
	}
	if next.ID() != u.ID() {
		t.Fatalf("id changed")
	}
}
