package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers собирает все HTTP-хэндлеры приложения
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Favorite    *FavoriteHandler
	Admin       *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, sc.AuthService),
		Job:         NewJobHandler(base, sc.JobService),
		Application: NewApplicationHandler(base, sc.ApplicationService),
		Favorite:    NewFavoriteHandler(base, sc.FavoriteService),
		Admin:       NewAdminHandler(base, sc.AdminService),
	}
}
