package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

const opUpdate = "update_user"

// UpdateUserUseCase applies a partial update to an existing user.
type UpdateUserUseCase struct {
	repo   ports.UserRepository
	policy domain.PasswordPolicy
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUpdateUserUseCase(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UpdateUserUseCase {
	return &UpdateUserUseCase{repo: repo, hasher: hasher, log: log}
}

// Execute loads the user, hashes a new password only when one is supplied,
// converts the other present fields and saves the merged user.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd ports.UpdateUserCommand) (*ports.UserResult, error) {
	id, err := domain.NewUserID(cmd.ID)
	if err != nil {
		return nil, fail(uc.log, opUpdate, err)
	}

	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(uc.log, opUpdate, err)
	}
	if current == nil {
		return nil, fail(uc.log, opUpdate, domain.NotFound(cmd.ID))
	}

	var changes domain.UserChanges

	if cmd.RawPassword != nil {
		if err := uc.policy.Validate(*cmd.RawPassword); err != nil {
			return nil, fail(uc.log, opUpdate, err)
		}
		hash, err := uc.hasher.HashPassword(ctx, *cmd.RawPassword)
		if err != nil {
			return nil, fail(uc.log, opUpdate, err)
		}
		changes.PasswordHash = &hash
	}

	if err := convertChanges(cmd, &changes); err != nil {
		return nil, fail(uc.log, opUpdate, err)
	}

	saved, err := uc.repo.Save(ctx, current.Update(changes))
	if err != nil {
		return nil, fail(uc.log, opUpdate, err)
	}

	uc.log.Info().Str("user_id", saved.ID().String()).Msg("user updated")
	return toResult(saved), nil
}

// convertChanges validates every present field of cmd except the password.
func convertChanges(cmd ports.UpdateUserCommand, changes *domain.UserChanges) error {
	if cmd.FirstName != nil {
		n, err := domain.NewName(*cmd.FirstName)
		if err != nil {
			return err
		}
		changes.FirstName = &n
	}
	if cmd.LastName != nil {
		n, err := domain.NewName(*cmd.LastName)
		if err != nil {
			return err
		}
		changes.LastName = &n
	}
	if cmd.Email != nil {
		e, err := domain.NewEmail(*cmd.Email)
		if err != nil {
			return err
		}
		changes.Email = &e
	}
	if cmd.Age != nil {
		a, err := domain.NewAge(*cmd.Age)
		if err != nil {
			return err
		}
		changes.Age = &a
	}
	return nil
}

var _ ports.UpdateUserUseCase = (*UpdateUserUseCase)(nil)
