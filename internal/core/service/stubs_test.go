package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]domain.User
	existsErr error
	findErr   error
	saveErr   error

	existsCalls int
	saveCalls   int
	saved       []domain.User
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[string]domain.User)}
	for _, u := range users {
		r.byID[u.ID().String()] = u
	}
	return r
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email domain.Email) (bool, error) {
	r.existsCalls++
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, u := range r.byID {
		if u.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Save(_ context.Context, user domain.User) (domain.User, error) {
	r.saveCalls++
	if r.saveErr != nil {
		return domain.User{}, r.saveErr
	}
	r.byID[user.ID().String()] = user
	r.saved = append(r.saved, user)
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id.String()]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// ---------------------------------------------------------------------------
// Stub hasher
// ---------------------------------------------------------------------------

type stubHasher struct {
	err   error
	calls []string
}

func (h *stubHasher) HashPassword(_ context.Context, plaintext string) (domain.PasswordHash, error) {
	h.calls = append(h.calls, plaintext)
	if h.err != nil {
		return domain.PasswordHash{}, h.err
	}
	return domain.NewPasswordHash("hashed:" + plaintext)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var errStoreDown = errors.New("store unavailable")

func seededUser(t *testing.T, id string, at time.Time) domain.User {
	t.Helper()
	uid, err := domain.NewUserID(id)
	if err != nil {
		t.Fatalf("NewUserID: %v", err)
	}
	first, _ := domain.NewName("jane")
	last, _ := domain.NewName("doe")
	email, _ := domain.NewEmail("jane@doe.com")
	age, _ := domain.NewAge(25)
	hash, _ := domain.NewPasswordHash("original-hash")
	return domain.RestoreUser(uid, first, last, email, age, hash, at, at)
}

func requireKind(t *testing.T, err error, kind domain.Kind) *domain.UserError {
	t.Helper()
	var ue *domain.UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *domain.UserError, got %T (%v)", err, err)
	}
	if ue.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, ue.Kind, ue)
	}
	return ue
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
