package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации,
// основанные на перечислениях из models/statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - критическая ошибка времени запуска.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.UserRoleCandidate, models.UserRoleEmployer, models.UserRoleAdmin:
		return true
	}
	return false
}

func validateJobType(fl validator.FieldLevel) bool {
	return models.JobType(fl.Field().String()).Valid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).Valid()
}
