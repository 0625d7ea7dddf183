package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

const opCreate = "create_user"

// CreateUserUseCase registers a new user.
type CreateUserUseCase struct {
	repo   ports.UserRepository
	policy domain.PasswordPolicy
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewCreateUserUseCase(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo, hasher: hasher, log: log}
}

// Execute validates the email, rejects duplicates, checks the password policy,
// hashes, and persists. The hasher is never called for a duplicate email.
func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd ports.CreateUserCommand) (*ports.UserResult, error) {
	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}

	exists, err := uc.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}
	if exists {
		return nil, fail(uc.log, opCreate, domain.AlreadyExists(email))
	}

	if err := uc.policy.Validate(cmd.RawPassword); err != nil {
		return nil, fail(uc.log, opCreate, err)
	}

	hash, err := uc.hasher.HashPassword(ctx, cmd.RawPassword)
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}

	firstName, err := domain.NewName(cmd.FirstName)
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}
	lastName, err := domain.NewName(cmd.LastName)
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}
	age, err := domain.NewAge(cmd.Age)
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}

	saved, err := uc.repo.Save(ctx, domain.NewUser(firstName, lastName, email, age, hash))
	if err != nil {
		return nil, fail(uc.log, opCreate, err)
	}

	uc.log.Info().Str("user_id", saved.ID().String()).Msg("user created")
	return toResult(saved), nil
}

var _ ports.CreateUserUseCase = (*CreateUserUseCase)(nil)
