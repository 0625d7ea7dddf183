package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

const opGet = "get_user"

// GetUserUseCase looks a user up by id.
type GetUserUseCase struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewGetUserUseCase(repo ports.UserRepository, log zerolog.Logger) *GetUserUseCase {
	return &GetUserUseCase{repo: repo, log: log}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd ports.GetUserCommand) (*ports.UserResult, error) {
	id, err := domain.NewUserID(cmd.ID)
	if err != nil {
		return nil, fail(uc.log, opGet, err)
	}

	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(uc.log, opGet, err)
	}
	if user == nil {
		return nil, fail(uc.log, opGet, domain.NotFound(cmd.ID))
	}

	uc.log.Debug().Str("user_id", cmd.ID).Msg("user fetched")
	return toResult(*user), nil
}

var _ ports.GetUserUseCase = (*GetUserUseCase)(nil)
