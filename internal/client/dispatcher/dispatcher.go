// dispatcher - пакет для выбора обработчика формы аутентификации по разметке страницы
// и подключения его к событию отправки формы.
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abezemskiy/authforms/internal/client/authcall"
	"github.com/abezemskiy/authforms/internal/client/dom"
	"github.com/abezemskiy/authforms/internal/client/forms"
	"github.com/abezemskiy/authforms/internal/client/logger"

	"go.uber.org/zap"
)

// Адреса сервера аутентификации по умолчанию.
const (
	SignUpEndpoint = "/auth/signup"
	SignInEndpoint = "/auth/signin"
)

// DefaultEndpoints - адреса, которые используют клиенты из cmd. Для восстановления пароля адреса нет.
func DefaultEndpoints() map[forms.Kind]string {
	return map[forms.Kind]string{
		forms.KindSignUp: SignUpEndpoint,
		forms.KindSignIn: SignInEndpoint,
	}
}

// Config - зависимости, общие для всех вариантов формы.
type Config struct {
	Client authcall.Caller
	// Endpoints - адрес отправки для каждого вида формы. Вид без адреса не обращается к сети.
	Endpoints map[forms.Kind]string
	Schedule  func(func())
	Notify    func(kind forms.Kind, resp json.RawMessage, err error)
}

// Handler - создает обработчик, соответствующий атрибуту name формы.
func Handler(form dom.Form, cfg Config) (*forms.Form, error) {
	name, _ := form.Attribute("name")
	kind, err := forms.ParseKind(name)
	if err != nil {
		return nil, err
	}
	f, err := forms.New(kind, form, forms.Config{
		Client:   cfg.Client,
		Endpoint: cfg.Endpoints[kind],
		Schedule: cfg.Schedule,
		Notify:   cfg.Notify,
	})
	if err != nil {
		return nil, fmt.Errorf("bind %s form error, %w", kind, err)
	}
	return f, nil
}

// Bootstrap - находит форму аутентификации в документе и подключает к ней обработчик.
// Страница без формы не является ошибкой, тогда возвращается (nil, nil).
// При ошибке конфигурации обработчик событий не регистрируется.
func Bootstrap(ctx context.Context, doc dom.Document, cfg Config) (*forms.Form, error) {
	form, ok := doc.FormByID(dom.FormID)
	if !ok {
		logger.ClientLog.Debug("page has no auth form")
		return nil, nil
	}

	f, err := Handler(form, cfg)
	if err != nil {
		logger.ClientLog.Error("auth form configuration error", zap.Error(err))
		return nil, err
	}

	form.AddEventListener(dom.SubmitEvent, func(ev dom.Event) {
		ev.PreventDefault()
		// результат попытки не ожидается, поток интерфейса не блокируется
		f.Submit(ctx)
	})
	logger.ClientLog.Info("auth form is ready", zap.String("form", f.Kind().String()))
	return f, nil
}

var (
	initOnce sync.Once
	initDone = make(chan struct{})
	current  *forms.Form
	initErr  error
)

// Init - инициализация страницы, выполняется один раз за время жизни процесса.
// Bootstrap запускается, когда документ готов. Повторные вызовы ничего не делают.
func Init(ctx context.Context, doc dom.Document, cfg Config) {
	initOnce.Do(func() {
		doc.OnReady(func() {
			current, initErr = Bootstrap(ctx, doc, cfg)
			close(initDone)
		})
	})
}

// Ready - канал закрывается после того, как Init подключил обработчик (или не смог его подключить).
func Ready() <-chan struct{} {
	return initDone
}

// Current - обработчик, подключенный Init, и ошибка конфигурации страницы.
// Значения имеют смысл только после закрытия канала Ready.
func Current() (*forms.Form, error) {
	return current, initErr
}
