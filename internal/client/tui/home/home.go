package home

import (
	"github.com/abezemskiy/authforms/internal/client/tui"
	"github.com/abezemskiy/authforms/internal/client/tui/app"

	"github.com/rivo/tview"
)

// Page - приветственное окно с выбором формы.
func Page(app *app.App) tview.Primitive {
	list := tview.NewList().
		AddItem("Вход", "", 's', func() { app.SwitchTo(tui.SignIn) }).
		AddItem("Регистрация", "", 'a', func() { app.SwitchTo(tui.SignUp) }).
		AddItem("Восстановление пароля", "", 'f', func() { app.SwitchTo(tui.Forgot) }).
		AddItem("Выход", "", 'q', func() { app.Stop() })

	list.SetBorder(true).SetTitle("Добро пожаловать в authforms")

	return list
}
