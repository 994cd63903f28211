package auth

import (
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
)

// Правила авторизации собраны здесь как чистые функции над (actor, resource),
// без обращений к БД - их можно тестировать независимо от транспорта.
// Отказ всегда выражается ошибкой Forbidden, а не молчаливым no-op.

// CanCreateJob: вакансии создают только работодатели.
func CanCreateJob(actor *models.User) error {
	if actor.Role != models.UserRoleEmployer {
		return appErrors.ErrForbidden
	}
	return nil
}

// CanManageJob: изменять и удалять вакансию может ее работодатель или админ.
func CanManageJob(actor *models.User, job *models.Job) error {
	if actor.Role == models.UserRoleAdmin {
		return nil
	}
	if actor.Role == models.UserRoleEmployer && actor.ID == job.EmployerID {
		return nil
	}
	return appErrors.ErrForbidden
}

// CanApply: откликнуться может только кандидат, и только на активную
// вакансию с неистекшим дедлайном. Уникальность пары (job, candidate)
// обеспечивает ограничение БД, а не проверка здесь.
func CanApply(actor *models.User, job *models.Job, now time.Time) error {
	if actor.Role != models.UserRoleCandidate {
		return appErrors.ErrForbidden
	}
	if !job.IsActive {
		return appErrors.ErrJobNotActive
	}
	if job.IsExpired(now) {
		return appErrors.ErrJobExpired
	}
	return nil
}

// CanReviewApplication: статус заявки меняет работодатель вакансии или админ.
// Кандидат может только создавать заявки.
func CanReviewApplication(actor *models.User, job *models.Job) error {
	return CanManageJob(actor, job)
}

// CanUseFavorites: избранное доступно только кандидатам, каждый видит
// и переключает только свое.
func CanUseFavorites(actor *models.User) error {
	if actor.Role != models.UserRoleCandidate {
		return appErrors.ErrForbidden
	}
	return nil
}

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(actor *models.User) bool {
	return actor.Role == models.UserRoleAdmin
}

// RequireAdmin: статистика и административные списки - только для админа.
func RequireAdmin(actor *models.User) error {
	if !IsAdmin(actor) {
		return appErrors.ErrForbidden
	}
	return nil
}

// ValidateRegistrationRole: регистрация доступна для candidate и employer,
// админы создаются только сидом или другим админом.
func ValidateRegistrationRole(role models.UserRole) error {
	if role != models.UserRoleCandidate && role != models.UserRoleEmployer {
		return appErrors.ErrInvalidUserRole
	}
	return nil
}

// ValidateRole проверяет валидность роли (включая admin, для админских операций)
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleCandidate, models.UserRoleEmployer, models.UserRoleAdmin:
		return nil
	default:
		return appErrors.ErrInvalidUserRole
	}
}
