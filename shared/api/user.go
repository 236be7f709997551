package api

// Request DTOs shared by gateway and server handlers

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Email *string `json:"email,omitempty" validate:"omitnil,email"`
}
