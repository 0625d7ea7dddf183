package handler

import "time"

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Timestamp time.Time    `json:"timestamp"`
	Status    int          `json:"status"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Path      string       `json:"path"`
	Fields    []FieldError `json:"fields,omitempty"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Email     string `json:"email"      validate:"required"`
	Age       *int   `json:"age"        validate:"required"`
	Password  string `json:"password"   validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// updateUserRequest distinguishes an absent field (nil) from a present one.
type updateUserRequest struct {
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
