// auth - пакет, который реализует middleware для аутентификации аккаунта по JWT.
package auth

import (
	"context"
	"net/http"

	"github.com/abezemskiy/authforms/internal/common/identity/tools/header"
	"github.com/abezemskiy/authforms/internal/common/identity/tools/token"
	"github.com/abezemskiy/authforms/internal/server/apierror"
	"github.com/abezemskiy/authforms/internal/server/logger"

	"go.uber.org/zap"
)

type contextKey string

// UserIDKey - ключ для установки ID аккаунта в контекст.
const UserIDKey = contextKey("userID")

// Middleware - проверяет JWT входящих запросов к серверу.
// Из полученного токена извлекается ID аккаунта и устанавливается в контекст.
func Middleware(h http.Handler) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		getToken, err := header.GetTokenFromHeader(req)
		// В случае ошибки получения токена возвращаю статус 401 - пользователь не аутентифицирован.
		if err != nil {
			logger.ServerLog.Error("failed to get token from request", zap.String("address", req.URL.String()), zap.Error(err))
			apierror.ErrUnauthorized.Handle(res)
			return
		}
		id, err := token.GetIDFromToken(getToken)
		if err != nil {
			logger.ServerLog.Error("failed to get account id from token", zap.String("address", req.URL.String()), zap.Error(err))
			apierror.ErrUnauthorized.Handle(res)
			return
		}

		ctx := context.WithValue(req.Context(), UserIDKey, id)
		h.ServeHTTP(res, req.WithContext(ctx))
	}
}

// AccountID - идентификатор аккаунта, установленный Middleware.
func AccountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}
