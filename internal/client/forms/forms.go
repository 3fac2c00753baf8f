// forms - пакет с обработчиками форм аутентификации: вход, регистрация и восстановление пароля.
//
// Все варианты реализованы одним типом Form, поведение выбирается по виду формы Kind.
// Общая часть (привязка полей, проверка, блокировка кнопки отправки, подсветка ошибок)
// не зависит от вида, отправка и кодирование учетных данных переопределяются вариантами.
package forms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/abezemskiy/authforms/internal/client/authcall"
	"github.com/abezemskiy/authforms/internal/client/dom"
	"github.com/abezemskiy/authforms/internal/client/logger"
	"github.com/abezemskiy/authforms/internal/client/nonce"

	"go.uber.org/zap"
)

// ErrConfiguration - форма на странице не соответствует ожидаемой разметке.
var ErrConfiguration = errors.New("invalid auth form configuration")

// emailPattern - нестрогая проверка формы адреса, а не валидация по RFC.
// Пробелом считаются также \v, пробелы Unicode и BOM.
var emailPattern = regexp.MustCompile(`[^\s\v\p{Z}\x{FEFF}]+@[^\s\v\p{Z}\x{FEFF}]+\.[^\s\v\p{Z}\x{FEFF}]+`)

// Kind - вид формы аутентификации.
type Kind int

const (
	KindUnknown Kind = iota
	KindSignIn
	KindSignUp
	KindForgot
)

// ParseKind - определяет вид формы по значению атрибута name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "signin":
		return KindSignIn, nil
	case "signup":
		return KindSignUp, nil
	case "forgot":
		return KindForgot, nil
	default:
		return KindUnknown, fmt.Errorf("%w: missing valid name attribute on %s, got %q", ErrConfiguration, dom.FormID, name)
	}
}

func (k Kind) String() string {
	switch k {
	case KindSignIn:
		return "signin"
	case KindSignUp:
		return "signup"
	case KindForgot:
		return "forgot"
	default:
		return "unknown"
	}
}

// Role - смысловая роль поля формы, объявляется атрибутом data-role.
type Role string

const (
	RoleUsername Role = "username"
	RoleEmail    Role = "email"
	RolePassword Role = "password"
	RoleConfirm  Role = "confirm"
)

// Позиции полей для разметки без атрибута data-role.
const (
	identityPosition = 0
	passwordPosition = 1
	confirmPosition  = 2
)

// Handler - общий интерфейс обработчиков форм.
type Handler interface {
	Validate() bool
	Submit(ctx context.Context) *Attempt
	ToggleSubmit(enabled bool)
}

// Config - зависимости формы.
type Config struct {
	// Client - отправка запроса аутентификации. Без клиента или без Endpoint запрос не отправляется.
	Client authcall.Caller
	// Endpoint - адрес, на который вариант отправляет учетные данные.
	Endpoint string
	// Schedule - выполняет изменения документа в потоке интерфейса после завершения запроса.
	Schedule func(func())
	// Notify - вызывается после завершения запроса, уже в потоке интерфейса.
	Notify func(kind Kind, resp json.RawMessage, err error)
	Now    func() time.Time
	Nonce  func(length int) string
}

func (c *Config) setDefaults() {
	if c.Schedule == nil {
		c.Schedule = func(fn func()) { fn() }
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Nonce == nil {
		c.Nonce = nonce.Generate
	}
}

// Field - привязка поля формы: контейнер и элемент ввода.
type Field struct {
	Container dom.Element
	Input     dom.Element
	Role      Role // объявленная роль, пустая если атрибута нет
}

// Form - обработчик формы аутентификации.
type Form struct {
	kind   Kind
	form   dom.Form
	submit dom.Element
	fields []Field
	cfg    Config

	// индексы полей по ролям, -1 если вариант поле не использует
	identity int
	password int
	confirm  int
}

var _ Handler = (*Form)(nil)

// New - привязывает обработчик вида kind к форме.
// Поля и элемент отправки считываются один раз: разметка формы считается неизменной.
func New(kind Kind, form dom.Form, cfg Config) (*Form, error) {
	cfg.setDefaults()

	submit, ok := form.Control(dom.SubmitControl)
	if !ok {
		return nil, fmt.Errorf("%w: form has no %q control", ErrConfiguration, dom.SubmitControl)
	}

	f := &Form{
		kind:     kind,
		form:     form,
		submit:   submit,
		cfg:      cfg,
		identity: -1,
		password: -1,
		confirm:  -1,
	}
	if err := f.bindFields(); err != nil {
		return nil, err
	}
	if err := f.resolveRoles(); err != nil {
		return nil, err
	}
	return f, nil
}

// bindFields - собирает контейнеры полей в порядке документа и первый элемент ввода в каждом из них.
func (f *Form) bindFields() error {
	containers := f.form.QuerySelectorAll(dom.FieldSelector)
	f.fields = make([]Field, 0, len(containers))
	for i, c := range containers {
		inputs := c.ElementsByTagName(dom.InputTag)
		if len(inputs) == 0 {
			return fmt.Errorf("%w: field container %d has no input", ErrConfiguration, i)
		}
		role, _ := inputs[0].Attribute(dom.RoleAttribute)
		f.fields = append(f.fields, Field{Container: c, Input: inputs[0], Role: Role(role)})
	}
	return nil
}

func (f *Form) resolveRoles() error {
	var ok bool
	switch f.kind {
	case KindSignIn:
		if f.identity, ok = f.lookup(identityPosition, RoleUsername, RoleEmail); !ok {
			return fmt.Errorf("%w: signin form has no username field", ErrConfiguration)
		}
		if f.password, ok = f.lookup(passwordPosition, RolePassword); !ok {
			return fmt.Errorf("%w: signin form has no password field", ErrConfiguration)
		}
	case KindSignUp:
		if f.identity, ok = f.lookup(identityPosition, RoleEmail); !ok {
			return fmt.Errorf("%w: signup form has no email field", ErrConfiguration)
		}
		if f.password, ok = f.lookup(passwordPosition, RolePassword); !ok {
			return fmt.Errorf("%w: signup form has no password field", ErrConfiguration)
		}
		if f.confirm, ok = f.lookup(confirmPosition, RoleConfirm); !ok {
			return fmt.Errorf("%w: signup form has no confirm field", ErrConfiguration)
		}
	case KindForgot:
	default:
		return fmt.Errorf("%w: unknown form kind %d", ErrConfiguration, f.kind)
	}
	return nil
}

// lookup - индекс поля с одной из ролей roles. Если роль нигде не объявлена,
// используется поле в позиции position, при условии что оно не объявило другую роль.
func (f *Form) lookup(position int, roles ...Role) (int, bool) {
	for _, role := range roles {
		for i, field := range f.fields {
			if field.Role == role {
				return i, true
			}
		}
	}
	if position >= len(f.fields) {
		return -1, false
	}
	if declared := f.fields[position].Role; declared != "" && !slices.Contains(roles, declared) {
		return -1, false
	}
	return position, true
}

// Kind - вид формы.
func (f *Form) Kind() Kind {
	return f.kind
}

// Fields - привязанные поля в порядке документа.
func (f *Form) Fields() []Field {
	return slices.Clone(f.fields)
}

// Validate - общая проверка полей. Поле типа email должно содержать адрес вида x@y.z,
// остальные поля не должны быть пустыми. Подсветка ошибок полностью заменяет предыдущую.
func (f *Form) Validate() bool {
	invalid := f.invalidFields()
	f.showErrors(invalid)
	return len(invalid) == 0
}

// invalidFields - множество индексов полей, не прошедших проверку.
func (f *Form) invalidFields() map[int]bool {
	invalid := make(map[int]bool)
	for i, field := range f.fields {
		value := field.Input.Value()
		inputType, _ := field.Input.Attribute("type")
		switch inputType {
		case "email":
			if !emailPattern.MatchString(value) {
				invalid[i] = true
			}
		default:
			if value == "" {
				logger.ClientLog.Debug("empty field value", zap.String("form", f.kind.String()), zap.Int("field", i))
				invalid[i] = true
			}
		}
	}
	return invalid
}

func (f *Form) showErrors(invalid map[int]bool) {
	for i := range f.fields {
		f.toggleError(i, invalid[i])
	}
}

// toggleError - добавляет или снимает класс ошибки с контейнера поля.
func (f *Form) toggleError(index int, show bool) {
	classes := f.fields[index].Container.ClassList()
	hasClass := classes.Contains(dom.ErrorClass)
	if show && !hasClass {
		classes.Add(dom.ErrorClass)
	} else if !show && hasClass {
		classes.Remove(dom.ErrorClass)
	}
}

// ToggleSubmit - блокирует кнопку отправки, чтобы двойное нажатие не отправило форму дважды,
// или снова разрешает отправку.
func (f *Form) ToggleSubmit(enabled bool) {
	disabled := f.submit.Disabled()
	if enabled && disabled {
		f.submit.SetDisabled(false)
	} else if !enabled && !disabled {
		f.submit.SetDisabled(true)
	}
}

// SubmitEnabled - разрешена ли сейчас отправка формы.
func (f *Form) SubmitEnabled() bool {
	return !f.submit.Disabled()
}

// Submit - обрабатывает отправку формы в зависимости от её вида.
// Проверка и блокировка кнопки выполняются синхронно, запрос к серверу - в отдельной горутине.
func (f *Form) Submit(ctx context.Context) *Attempt {
	switch f.kind {
	case KindSignIn:
		return f.submitSignIn(ctx)
	case KindSignUp:
		return f.submitSignUp(ctx)
	default:
		return f.submitBase()
	}
}

// submitBase - отправка по умолчанию: только проверка полей и состояние кнопки.
func (f *Form) submitBase() *Attempt {
	if f.Validate() {
		f.ToggleSubmit(false)
		return acceptedAttempt(nil)
	}
	f.ToggleSubmit(true)
	return rejectedAttempt()
}

// setFormError - выставляет или снимает ошибку уровня формы.
func (f *Form) setFormError(message string) {
	classes := f.form.ClassList()
	hasClass := classes.Contains(dom.ErrorClass)
	if message != "" && !hasClass {
		classes.Add(dom.ErrorClass)
	} else if message == "" && hasClass {
		classes.Remove(dom.ErrorClass)
	}
	if boxes := f.form.QuerySelectorAll(dom.FormErrorSelector); len(boxes) > 0 {
		boxes[0].SetText(message)
	}
}
