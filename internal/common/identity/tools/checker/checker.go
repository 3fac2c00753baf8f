// checker - проверки учетных данных, полученных от клиента.
package checker

import "strings"

// SplitEmail - делит адрес на локальную часть и домен.
// Адрес должен содержать ровно один символ @ и непустые части.
func SplitEmail(email string) (local, domain string, ok bool) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// CheckPassword - функция для проверки корректности пароля.
func CheckPassword(password string) bool {
	// проверяю, что пароль не является пустой строкой
	return password != ""
}

// CheckHash - функция для проверки корректности хэша.
func CheckHash(hash string) bool {
	// проверяю, что хэш не является пустой строкой
	return hash != ""
}
