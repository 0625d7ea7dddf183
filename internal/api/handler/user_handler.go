package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/identity-service/internal/api/metrics"
	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

const (
	opCreateUser = "create_user"
	opGetUser    = "get_user"
	opUpdateUser = "update_user"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	create ports.CreateUserUseCase
	get    ports.GetUserUseCase
	update ports.UpdateUserUseCase
}

func NewUserHandler(create ports.CreateUserUseCase, get ports.GetUserUseCase, update ports.UpdateUserUseCase) *UserHandler {
	return &UserHandler{create: create, get: get, update: update}
}

// Create handles POST /api/v1/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) (err error) {
	defer observe(opCreateUser, time.Now(), &err)

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.create.Execute(c.Request().Context(), toCreateCommand(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(result))
}

// Get handles GET /api/v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) (err error) {
	defer observe(opGetUser, time.Now(), &err)

	result, err := h.get.Execute(c.Request().Context(), ports.GetUserCommand{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(result))
}

// Update handles PUT /api/v1/users/:id. Absent fields are left unchanged.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) (err error) {
	defer observe(opUpdateUser, time.Now(), &err)

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.update.Execute(c.Request().Context(), toUpdateCommand(c.Param("id"), req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(result))
}

func observe(operation string, start time.Time, err *error) {
	outcome := metrics.OutcomeSuccess
	if *err != nil {
		outcome = outcomeOf(*err)
	}
	metrics.ObserveUserOperation(operation, outcome, time.Since(start))
}

func outcomeOf(err error) string {
	if _, ok := err.(*ValidationError); ok {
		return domain.KindInvalidData.String()
	}
	if he, ok := err.(*echo.HTTPError); ok && he.Code < http.StatusInternalServerError {
		return domain.KindInvalidData.String()
	}
	return domain.Classify(err).Kind.String()
}
