package dto

import "hospital-dashboard/internal/domain/entity"

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name"`
	Role     string `json:"role" validate:"omitempty,oneof=admin doctor"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// Response DTOs

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
