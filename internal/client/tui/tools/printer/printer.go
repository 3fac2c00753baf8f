package printer

import (
	"github.com/abezemskiy/authforms/internal/client/tui/app"

	"github.com/rivo/tview"
)

const (
	errorPage   = "error"
	messagePage = "message"
)

// Error - функция для вывода ошибок на экран пользователя.
func Error(app *app.App, message string) {
	show(app, errorPage, "Ошибка: "+message)
}

// Message - функция для вывода сообщения на экран пользователя.
func Message(app *app.App, message string) {
	show(app, messagePage, "Сообщение: "+message)
}

// show - модальное окно поверх текущего экрана, закрывается кнопкой OK.
func show(app *app.App, page, text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			app.Pages.RemovePage(page)
		})
	app.Pages.AddPage(page, modal, true, true)
}
