package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeNotFound            ErrorCode = "NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeCannotModifySelf   ErrorCode = "CANNOT_MODIFY_SELF"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
