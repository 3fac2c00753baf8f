// apierror - ошибки, которые сервер возвращает клиенту в теле ответа.
// Тело ошибки имеет вид {"message": "...", "code": 400}.
package apierror

import (
	"encoding/json"
	"net/http"

	"github.com/abezemskiy/authforms/internal/server/logger"

	"go.uber.org/zap"
)

// ApiError - ошибка с сообщением для клиента и HTTP-кодом ответа.
type ApiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

var (
	ErrServer          = New("The server encountered an error processing the request", http.StatusInternalServerError)
	ErrMalformedJSON   = New("Malformed JSON received", http.StatusBadRequest)
	ErrEmptyAuthData   = New("Received empty authentication data", http.StatusBadRequest)
	ErrRequestDate     = New("Invalid request date received, or the request timed out", http.StatusBadRequest)
	ErrInvalidAuthData = New("Invalid authentication data received", http.StatusBadRequest)
	ErrEmptyAuthValues = New("Empty authentication values received", http.StatusBadRequest)
	ErrInvalidEmail    = New("Invalid email address received", http.StatusBadRequest)
	ErrAccountExists   = New("An account with this email already exists", http.StatusConflict)
	ErrMismatchedHash  = New("Mismatched hash received", http.StatusUnauthorized)
	ErrUnauthorized    = New("Missing or invalid authorization token", http.StatusUnauthorized)
	ErrNotFound        = New("The requested resource was not found", http.StatusNotFound)
)

// New - создает ошибку с сообщением message и кодом code.
func New(message string, code int) *ApiError {
	return &ApiError{
		Message: message,
		Code:    code,
	}
}

func (e *ApiError) Error() string {
	return e.Message
}

// Handle - отправляет ошибку клиенту.
func (e *ApiError) Handle(res http.ResponseWriter) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(e.Code)
	if err := json.NewEncoder(res).Encode(e); err != nil {
		logger.ServerLog.Error("failed to encode api error", zap.String("message", e.Message), zap.Error(err))
	}
}
