package header

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	// Authorization - заголовок с токеном аккаунта.
	Authorization = "Authorization"

	bearer = "Bearer"
)

// SetToken - устанавливает токен в заголовок ответа.
func SetToken(res http.ResponseWriter, token string) {
	res.Header().Set(Authorization, bearer+" "+token)
}

// GetTokenFromHeader - функция для получения токена из заголовка запроса.
func GetTokenFromHeader(req *http.Request) (string, error) {
	return parse(req.Header.Get(Authorization))
}

// GetTokenFromResponseHeader - извлекает токен из заголовка ответа сервера, так его получает клиент.
func GetTokenFromResponseHeader(res *http.Response) (string, error) {
	return parse(res.Header.Get(Authorization))
}

func parse(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	// заголовок должен иметь вид "Bearer <токен>"
	parts := strings.Split(value, " ")
	if len(parts) != 2 || parts[0] != bearer || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return parts[1], nil
}
