// ident - страницы интерфейса с формами аутентификации.
// Проверка и отправка выполняются обработчиками из пакета forms, страница только строит форму
// и показывает результат запроса.
package ident

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abezemskiy/authforms/internal/client/dispatcher"
	"github.com/abezemskiy/authforms/internal/client/dom/tuidom"
	"github.com/abezemskiy/authforms/internal/client/forms"
	session "github.com/abezemskiy/authforms/internal/client/identity"
	"github.com/abezemskiy/authforms/internal/client/logger"
	"github.com/abezemskiy/authforms/internal/client/tui"
	"github.com/abezemskiy/authforms/internal/client/tui/app"
	"github.com/abezemskiy/authforms/internal/client/tui/tools/printer"
	"github.com/abezemskiy/authforms/internal/repositories/identity"

	"github.com/rivo/tview"
	"go.uber.org/zap"
)

type layout struct {
	title  string
	submit string
	fields []tuidom.FieldSpec
}

var layouts = map[forms.Kind]layout{
	forms.KindSignIn: {
		title:  "Вход",
		submit: "Войти",
		fields: []tuidom.FieldSpec{
			{Label: "Email", Type: "email", Role: string(forms.RoleUsername)},
			{Label: "Пароль", Type: "password", Role: string(forms.RolePassword)},
		},
	},
	forms.KindSignUp: {
		title:  "Регистрация",
		submit: "Зарегистрироваться",
		fields: []tuidom.FieldSpec{
			{Label: "Email", Type: "email", Role: string(forms.RoleEmail)},
			{Label: "Пароль", Type: "password", Role: string(forms.RolePassword)},
			{Label: "Подтвердите пароль", Type: "password", Role: string(forms.RoleConfirm)},
		},
	},
	forms.KindForgot: {
		title:  "Восстановление пароля",
		submit: "Отправить",
		fields: []tuidom.FieldSpec{
			{Label: "Email", Type: "email", Role: string(forms.RoleEmail)},
		},
	},
}

// NewForm - строит форму вида kind и подключает к ней обработчик.
func NewForm(ctx context.Context, kind forms.Kind, cfg dispatcher.Config) (*tuidom.Form, *forms.Form, error) {
	l, ok := layouts[kind]
	if !ok {
		return nil, nil, fmt.Errorf("%w: no layout for %s form", forms.ErrConfiguration, kind)
	}
	view := tuidom.NewForm(kind.String(), l.fields, l.submit)
	view.Primitive().SetBorder(true).SetTitle(l.title).SetTitleAlign(tview.AlignCenter)

	handler, err := dispatcher.Bootstrap(ctx, tuidom.NewDocument(view), cfg)
	if err != nil {
		return nil, nil, err
	}
	return view, handler, nil
}

// Page - страница с формой вида kind. После успешного входа аккаунт сохраняется в sess.
func Page(ctx context.Context, kind forms.Kind, cfg dispatcher.Config, sess session.ISession) func(app *app.App) tview.Primitive {
	return func(app *app.App) tview.Primitive {
		cfg.Schedule = app.Schedule
		cfg.Notify = func(kind forms.Kind, resp json.RawMessage, err error) {
			showResult(app, sess, kind, resp, err)
		}

		view, _, err := NewForm(ctx, kind, cfg)
		if err != nil {
			logger.ClientLog.Error("failed to build auth page", zap.String("form", kind.String()), zap.Error(err))
			return tview.NewTextView().SetText(err.Error())
		}

		view.Primitive().AddButton("Назад", func() { app.SwitchTo(tui.Home) })
		view.Primitive().AddButton("Выход", func() { app.Stop() })

		return tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(view.Primitive(), 0, 1, true).
			AddItem(view.ErrorView(), 1, 0, false)
	}
}

// showResult - сообщение пользователю о результате запроса.
// Ошибка уже отражена в форме, поэтому окно показывается только при успехе.
func showResult(app *app.App, sess session.ISession, kind forms.Kind, resp json.RawMessage, err error) {
	if err != nil {
		return
	}
	var data identity.AuthResponse
	if err := json.Unmarshal(resp, &data); err != nil || data.ID == "" {
		logger.ClientLog.Error("unexpected authentication response", zap.String("form", kind.String()), zap.Error(err))
		printer.Error(app, "unexpected server response")
		return
	}

	switch kind {
	case forms.KindSignUp:
		printer.Message(app, "account successfully registered")
		app.SwitchTo(tui.SignIn)
	case forms.KindSignIn:
		if sess != nil {
			sess.Set(data.ID)
		}
		printer.Message(app, fmt.Sprintf("signed in as %s", data.ID))
	}
}
