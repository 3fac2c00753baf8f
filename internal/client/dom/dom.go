// dom - пакет с минимальным контрактом документа, к которому привязываются формы аутентификации.
// Реализации: htmldom (разобранный HTML), jsdom (DOM браузера в wasm), tuidom (форма tview).
package dom

const (
	// FormID - идентификатор элемента формы аутентификации на странице.
	FormID = "auth-form"
	// FieldSelector - селектор контейнеров полей формы.
	FieldSelector = "div.form-field"
	// FormErrorSelector - селектор элемента для вывода ошибки уровня формы.
	FormErrorSelector = "div.form-error"
	// InputTag - тег элемента ввода внутри контейнера поля.
	InputTag = "input"
	// ErrorClass - класс, которым помечается контейнер поля или форма с ошибкой.
	ErrorClass = "error"
	// SubmitControl - имя элемента формы, отправляющего форму.
	SubmitControl = "submit"
	// SubmitEvent - имя события отправки формы.
	SubmitEvent = "submit"
	// RoleAttribute - атрибут, которым поле объявляет свою роль.
	RoleAttribute = "data-role"
)

// ClassList - набор классов элемента.
type ClassList interface {
	Contains(class string) bool
	Add(class string)
	Remove(class string)
}

// Element - элемент документа.
type Element interface {
	// Attribute - возвращает значение атрибута и признак его наличия.
	Attribute(name string) (string, bool)
	// QuerySelectorAll - потомки, подходящие под CSS селектор, в порядке документа.
	QuerySelectorAll(selector string) []Element
	// ElementsByTagName - потомки с заданным тегом в порядке документа.
	ElementsByTagName(tag string) []Element
	ClassList() ClassList
	// Value - текущее значение элемента ввода.
	Value() string
	Disabled() bool
	SetDisabled(disabled bool)
	// SetText - заменяет текстовое содержимое элемента.
	SetText(text string)
}

// Event - событие документа.
type Event interface {
	Type() string
	PreventDefault()
	DefaultPrevented() bool
}

// Form - элемент формы.
type Form interface {
	Element
	// Control - именованный элемент управления формы (аналог form.elements[name]).
	Control(name string) (Element, bool)
	// AddEventListener - регистрирует обработчик события формы.
	AddEventListener(eventType string, listener func(Event))
}

// Document - страница с формами.
type Document interface {
	// FormByID - возвращает форму с идентификатором id, если такой элемент есть и он является формой.
	FormByID(id string) (Form, bool)
	// OnReady - выполняет fn, когда документ готов к работе.
	OnReady(fn func())
}

// BasicEvent - простая реализация Event, которую используют адаптеры без собственной модели событий.
type BasicEvent struct {
	name      string
	prevented bool
}

// NewEvent - создает событие с типом name.
func NewEvent(name string) *BasicEvent {
	return &BasicEvent{name: name}
}

func (e *BasicEvent) Type() string { return e.name }

func (e *BasicEvent) PreventDefault() { e.prevented = true }

func (e *BasicEvent) DefaultPrevented() bool { return e.prevented }
