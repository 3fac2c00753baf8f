package identity

import "context"

//go:generate mockgen -destination=../mocks/mock_identity.go -package=mocks github.com/abezemskiy/authforms/internal/repositories/identity Identifier

// Identifier - интерфейс для реализации процедур регистрации и авторизации пользователя.
type Identifier interface {
	Register(ctx context.Context, account Account) (bool, error)        // Метод для регистрации пользователя. false - аккаунт уже существует.
	Authorize(ctx context.Context, email string) (Account, bool, error) // Метод для получения аккаунта по email. false - аккаунт не найден.
}

// AuthenticationData - структура запроса аутентификации, которую формирует клиентская форма.
// Одна и та же структура используется клиентом для отправки и сервером для разбора запроса.
type AuthenticationData struct {
	AuthString string `json:"authString"` // base64 от строки "<логин>&<пароль>"
	Date       int64  `json:"date"`       // время формирования запроса, unix-время в секундах
	Nonce      string `json:"nonce"`      // псевдослучайная строка, возвращается сервером в ответе
}

// Account - структура аккаунта пользователя.
// Email хранится разделённым на локальную часть и домен.
type Account struct {
	ID            string
	EmailLocal    string
	EmailDomain   string
	PasswordHash  string
	EmailVerified bool
}

// Email - собирает адрес электронной почты аккаунта.
func (a Account) Email() string {
	return a.EmailLocal + "@" + a.EmailDomain
}

// AuthResponse - тело успешного ответа сервера на запрос аутентификации.
type AuthResponse struct {
	ID    string `json:"id"`    // идентификатор аккаунта
	Nonce string `json:"nonce"` // nonce из запроса клиента
}
