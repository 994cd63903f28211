package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Phone     string          `json:"phone,omitempty"`
	Bio       string          `json:"bio,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}
}

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`
}
