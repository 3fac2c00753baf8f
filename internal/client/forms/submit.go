package forms

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/abezemskiy/authforms/internal/client/authcall"
	"github.com/abezemskiy/authforms/internal/client/logger"
	"github.com/abezemskiy/authforms/internal/client/nonce"
	"github.com/abezemskiy/authforms/internal/repositories/identity"

	"go.uber.org/zap"
)

// Attempt - результат одной попытки отправки формы.
type Attempt struct {
	Accepted bool                         // форма прошла проверку на стороне клиента
	Payload  *identity.AuthenticationData // сформированный запрос, nil если учетные данные не формировались

	done chan struct{}
	resp json.RawMessage
	err  error
}

func newAttempt(accepted bool, payload *identity.AuthenticationData) *Attempt {
	return &Attempt{
		Accepted: accepted,
		Payload:  payload,
		done:     make(chan struct{}),
	}
}

func acceptedAttempt(payload *identity.AuthenticationData) *Attempt {
	a := newAttempt(true, payload)
	a.finish(nil, nil)
	return a
}

func rejectedAttempt() *Attempt {
	a := newAttempt(false, nil)
	a.finish(nil, nil)
	return a
}

func (a *Attempt) finish(resp json.RawMessage, err error) {
	a.resp = resp
	a.err = err
	close(a.done)
}

// Done - канал закрывается, когда попытка завершена и её результат отражен в документе.
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// Wait - ожидает завершения попытки и возвращает ответ сервера или *authcall.RequestError.
func (a *Attempt) Wait() (json.RawMessage, error) {
	<-a.done
	return a.resp, a.err
}

// EncodeCredentials - кодирует пару логин-пароль в строку аутентификации.
func EncodeCredentials(login, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(login + "&" + password))
}

// submitSignIn - отправка формы входа.
func (f *Form) submitSignIn(ctx context.Context) *Attempt {
	if !f.Validate() {
		f.ToggleSubmit(true)
		logger.ClientLog.Error("signin form is not valid")
		return rejectedAttempt()
	}
	return f.send(ctx)
}

// submitSignUp - отправка формы регистрации. Проверка совпадения паролей и общая проверка
// выполняются обе, чтобы пользователь видел все ошибки сразу.
func (f *Form) submitSignUp(ctx context.Context) *Attempt {
	matched := f.CheckPasswords()
	valid := f.Validate()
	if !matched {
		// Validate перерисовала ошибки всех полей, возвращаю отметку несовпадения паролей
		f.toggleError(f.confirm, true)
	}
	if !matched || !valid {
		f.ToggleSubmit(true)
		logger.ClientLog.Error("signup form is not valid", zap.Bool("passwords matched", matched))
		return rejectedAttempt()
	}
	return f.send(ctx)
}

// CheckPasswords - проверяет совпадение пароля и подтверждения.
// При несовпадении контейнер подтверждения помечается ошибкой.
func (f *Form) CheckPasswords() bool {
	if f.password < 0 || f.confirm < 0 {
		return true
	}
	if f.fields[f.password].Input.Value() != f.fields[f.confirm].Input.Value() {
		f.toggleError(f.confirm, true)
		return false
	}
	return true
}

// payload - формирует запрос аутентификации из текущих значений полей.
func (f *Form) payload() identity.AuthenticationData {
	login := f.fields[f.identity].Input.Value()
	password := f.fields[f.password].Input.Value()
	return identity.AuthenticationData{
		AuthString: EncodeCredentials(login, password),
		Date:       f.cfg.Now().Unix(),
		Nonce:      f.cfg.Nonce(nonce.Length),
	}
}

// send - блокирует кнопку и отправляет учетные данные. Кнопка блокируется до запуска горутины,
// поэтому повторное нажатие не приведет ко второй отправке.
func (f *Form) send(ctx context.Context) *Attempt {
	f.ToggleSubmit(false)
	f.setFormError("")

	data := f.payload()
	if f.cfg.Client == nil || f.cfg.Endpoint == "" {
		// для варианта не настроен адрес, запрос только фиксируется в логе
		logger.ClientLog.Info("authentication payload built",
			zap.String("form", f.kind.String()), zap.Int64("date", data.Date), zap.String("nonce", data.Nonce))
		return acceptedAttempt(&data)
	}

	a := newAttempt(true, &data)
	go func() {
		resp, err := f.cfg.Client.AuthCall(ctx, data, f.cfg.Endpoint)
		if err != nil {
			var reqErr *authcall.RequestError
			if !errors.As(err, &reqErr) {
				err = &authcall.RequestError{URL: f.cfg.Endpoint, Err: err}
			}
		}
		f.cfg.Schedule(func() {
			f.complete(resp, err)
			a.finish(resp, err)
		})
	}()
	return a
}

// complete - отражает результат запроса в документе.
// При ошибке кнопка отправки снова разрешается, а форма помечается ошибкой.
func (f *Form) complete(resp json.RawMessage, err error) {
	if err != nil {
		logger.ClientLog.Error("authentication request error",
			zap.String("form", f.kind.String()), zap.String("url", f.cfg.Endpoint), zap.Error(errors.Unwrap(err)))
		f.ToggleSubmit(true)
		f.setFormError(err.Error())
	} else {
		logger.ClientLog.Info("authentication request accepted",
			zap.String("form", f.kind.String()), zap.String("url", f.cfg.Endpoint))
	}
	if f.cfg.Notify != nil {
		f.cfg.Notify(f.kind, resp, err)
	}
}
