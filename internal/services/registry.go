package services

// ServiceContainer собирает все сервисы приложения для передачи в хэндлеры
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	FavoriteService    FavoriteService
	AdminService       AdminService
}
