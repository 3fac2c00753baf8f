// pages - страницы с формами аутентификации.
// Разметка страниц соответствует контракту, к которому привязывается клиентский обработчик форм.
package pages

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"

	"github.com/abezemskiy/authforms/internal/server/apierror"
	"github.com/abezemskiy/authforms/internal/server/logger"

	"go.uber.org/zap"
)

// Имена форм, которые понимает клиентский обработчик.
const (
	SignIn = "signin"
	SignUp = "signup"
	Forgot = "forgot"
)

// Field - поле формы.
type Field struct {
	Label        string
	Type         string
	Role         string
	Autocomplete string
}

// Page - данные страницы с формой.
type Page struct {
	Name   string
	Title  string
	Submit string
	Static string
	Fields []Field
}

var layouts = map[string]Page{
	SignIn: {
		Title:  "Вход",
		Submit: "Войти",
		Fields: []Field{
			{Label: "Email", Type: "email", Role: "username", Autocomplete: "username"},
			{Label: "Пароль", Type: "password", Role: "password", Autocomplete: "current-password"},
		},
	},
	SignUp: {
		Title:  "Регистрация",
		Submit: "Зарегистрироваться",
		Fields: []Field{
			{Label: "Email", Type: "email", Role: "email", Autocomplete: "email"},
			{Label: "Пароль", Type: "password", Role: "password", Autocomplete: "new-password"},
			{Label: "Подтвердите пароль", Type: "password", Role: "confirm", Autocomplete: "new-password"},
		},
	},
	Forgot: {
		Title:  "Восстановление пароля",
		Submit: "Отправить",
		Fields: []Field{
			{Label: "Email", Type: "email", Role: "email", Autocomplete: "email"},
		},
	},
}

//go:embed templates/page.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html"))

// Lookup - данные страницы с формой name, static - префикс адреса статических файлов.
func Lookup(name, static string) (Page, error) {
	p, ok := layouts[name]
	if !ok {
		return Page{}, fmt.Errorf("unknown form %q", name)
	}
	p.Name = name
	p.Static = static
	p.Fields = slices.Clone(p.Fields)
	return p, nil
}

// Render - хэндлер страницы с формой name.
func Render(res http.ResponseWriter, req *http.Request, name, static string) {
	p, err := Lookup(name, static)
	if err != nil {
		logger.ServerLog.Error("failed to find page", zap.String("address", req.URL.String()), zap.Error(err))
		apierror.ErrNotFound.Handle(res)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(res, p); err != nil {
		logger.ServerLog.Error("failed to render page", zap.String("address", req.URL.String()), zap.Error(err))
	}
}

func RenderHandler(name, static string) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		Render(res, req, name, static)
	}
	return fn
}
