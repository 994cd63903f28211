package dto

import "jobboard_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`
	Phone    string          `json:"phone" validate:"omitempty,max=32"`
	Bio      string          `json:"bio" validate:"omitempty,max=2000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}
