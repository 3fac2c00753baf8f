// tui - интерфейс терминального клиента с формами входа, регистрации и восстановления пароля.
package tui

// Имена страниц интерфейса.
const (
	Home   = "home"
	SignIn = "signin"
	SignUp = "signup"
	Forgot = "forgot"
)
