package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"errors,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails возвращает копию ошибки с деталями (сама ошибка не мутируется,
// т.к. предопределенные ошибки - общие для всех запросов).
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"errors,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusUnprocessableEntity)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusUnprocessableEntity)
	ErrCannotModifySelf   = New(CodeCannotModifySelf, "Cannot modify your own account", http.StatusUnprocessableEntity)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusUnprocessableEntity)

	// Вакансии
	ErrJobNotFound  = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobNotActive = New("JOB_NOT_ACTIVE", "Job is not accepting applications", http.StatusForbidden)
	ErrJobExpired   = New("JOB_EXPIRED", "Job application deadline has passed", http.StatusForbidden)

	// Заявки
	ErrApplicationNotFound      = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationAlreadyExists = New(CodeConflict, "You have already applied to this job", http.StatusConflict)
	ErrInvalidStatusTransition  = New("INVALID_STATUS_TRANSITION", "Invalid application status transition", http.StatusUnprocessableEntity)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusUnprocessableEntity)
}
