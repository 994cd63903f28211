package appErrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке.
// Формат тела: { "message": "...", "errors": {...} }
type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleError переводит ошибку в HTTP-ответ. Неизвестные ошибки
// оборачиваются в 500 без утечки внутренних деталей клиенту.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	body := ErrorResponse{Message: appErr.Message, Errors: appErr.Details}
	if status == http.StatusInternalServerError {
		body = ErrorResponse{Message: "Internal server error"}
	}

	c.AbortWithStatusJSON(status, body)
}
