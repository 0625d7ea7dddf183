package service

import (
	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// toResult projects a user onto the result DTO. Names are returned as stored;
// capitalization is left to presentation.
func toResult(u domain.User) *ports.UserResult {
	return &ports.UserResult{
		ID:        u.ID().String(),
		Email:     u.Email().String(),
		Age:       u.Age().Int(),
		FirstName: u.FirstName().String(),
		LastName:  u.LastName().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// fail classifies err and logs it at a level matching its kind. The returned
// error is always a non-nil *domain.UserError.
func fail(log zerolog.Logger, op string, err error) error {
	ue := domain.Classify(err)

	var ev *zerolog.Event
	if ue.Kind == domain.KindUnknown {
		ev = log.Error()
	} else {
		ev = log.Warn()
	}
	ev.Err(ue).Str("operation", op).Str("kind", ue.Kind.String()).Msg("user operation failed")

	return ue
}
