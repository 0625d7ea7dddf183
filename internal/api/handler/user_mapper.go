package handler

import (
	"time"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

func toCreateCommand(req createUserRequest) ports.CreateUserCommand {
	cmd := ports.CreateUserCommand{
		Email:       req.Email,
		RawPassword: req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	}
	if req.Age != nil {
		cmd.Age = *req.Age
	}
	return cmd
}

func toUpdateCommand(id string, req updateUserRequest) ports.UpdateUserCommand {
	return ports.UpdateUserCommand{
		ID:          id,
		Email:       req.Email,
		RawPassword: req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
	}
}

func toUserResponse(r *ports.UserResult) userResponse {
	return userResponse{
		ID:        r.ID,
		Email:     r.Email,
		Age:       r.Age,
		FirstName: capitalize(r.FirstName),
		LastName:  capitalize(r.LastName),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// capitalize renders a stored name for display. Results always carry valid
// names; the raw value is returned if that ever stops holding.
func capitalize(raw string) string {
	n, err := domain.NewName(raw)
	if err != nil {
		return raw
	}
	return n.Capitalized()
}
