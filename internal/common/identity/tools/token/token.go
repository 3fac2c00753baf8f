package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Секретный ключ для генерации JWT.
var secretKey string

// SetSecretKey - функция для установки секретного ключа для генерации JWT.
func SetSecretKey(newKey string) {
	secretKey = newKey
}

// expireHour - время действия токена в часах.
var expireHour int

// SetExpireHour - функция для установки времени действия токена в часах.
func SetExpireHour(expire int) {
	expireHour = expire
}

// Claims - стандартные утверждения и идентификатор аккаунта.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// BuildJWT - создает подписанный токен для аккаунта accountID.
func BuildJWT(accountID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour * time.Duration(expireHour))),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("sign JWT error, %w", err)
	}
	return tokenString, nil
}

// GetIDFromToken - извлекает идентификатор аккаунта из токена.
// Принимаются только токены, подписанные HMAC.
func GetIDFromToken(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secretKey), nil
		})
	if err != nil {
		return "", fmt.Errorf("parse JWT error, %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}
	if claims.AccountID == "" {
		return "", fmt.Errorf("token has no account id")
	}
	return claims.AccountID, nil
}
