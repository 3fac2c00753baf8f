// tuidom - реализация контракта dom поверх формы tview.
// Форма строится из описаний полей, каждое поле становится контейнером div.form-field
// с одним элементом ввода, кнопка отправки - элементом submit.
// Изменения элементов выполняются в потоке интерфейса tview.
package tuidom

import (
	"slices"
	"strings"

	"github.com/abezemskiy/authforms/internal/client/dom"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrorMark - суффикс подписи поля с ошибкой. Form.Draw перезаписывает цвет подписи,
// поэтому ошибка отображается текстом.
const ErrorMark = " (!)"

// FieldSpec - описание поля формы.
type FieldSpec struct {
	Label string
	Type  string // text, email или password
	Role  string // значение data-role, может быть пустым
	Width int
}

// Element - элемент формы tview.
type Element struct {
	tag      string
	attrs    map[string]string
	classes  []string
	children []*Element

	label  string // исходная подпись поля
	input  *tview.InputField
	button *tview.Button
	view   *tview.TextView
	box    *tview.Box
}

func newElement(tag string, attrs map[string]string, classes ...string) *Element {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Element{tag: tag, attrs: attrs, classes: classes}
}

func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// QuerySelectorAll - поддерживаются селекторы вида tag, .class и tag.class.
func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	tag, class, _ := strings.Cut(selector, ".")
	var out []dom.Element
	e.walk(func(el *Element) {
		if tag != "" && el.tag != tag {
			return
		}
		if class != "" && !slices.Contains(el.classes, class) {
			return
		}
		out = append(out, el)
	})
	return out
}

func (e *Element) ElementsByTagName(tag string) []dom.Element {
	var out []dom.Element
	e.walk(func(el *Element) {
		if el.tag == tag {
			out = append(out, el)
		}
	})
	return out
}

// walk - обход потомков в порядке добавления.
func (e *Element) walk(fn func(*Element)) {
	for _, c := range e.children {
		fn(c)
		c.walk(fn)
	}
}

func (e *Element) ClassList() dom.ClassList {
	return classList{el: e}
}

func (e *Element) Value() string {
	if e.input != nil {
		return e.input.GetText()
	}
	return e.attrs["value"]
}

func (e *Element) Disabled() bool {
	if e.button != nil {
		return e.button.IsDisabled()
	}
	_, ok := e.attrs["disabled"]
	return ok
}

func (e *Element) SetDisabled(disabled bool) {
	if e.button != nil {
		e.button.SetDisabled(disabled)
		return
	}
	if disabled {
		e.attrs["disabled"] = ""
	} else {
		delete(e.attrs, "disabled")
	}
}

func (e *Element) SetText(text string) {
	if e.view != nil {
		e.view.SetText(text)
		return
	}
	e.attrs["text"] = text
}

// render - отражает класс ошибки на виджете.
func (e *Element) render() {
	hasError := slices.Contains(e.classes, dom.ErrorClass)
	for _, c := range e.children {
		if c.input != nil {
			if hasError {
				c.input.SetLabel(e.label + ErrorMark)
			} else {
				c.input.SetLabel(e.label)
			}
		}
	}
	if e.box != nil {
		if hasError {
			e.box.SetBorderColor(tcell.ColorRed)
		} else {
			e.box.SetBorderColor(tview.Styles.BorderColor)
		}
	}
}

type classList struct {
	el *Element
}

func (c classList) Contains(class string) bool {
	return slices.Contains(c.el.classes, class)
}

func (c classList) Add(class string) {
	if c.Contains(class) {
		return
	}
	c.el.classes = append(c.el.classes, class)
	c.el.render()
}

func (c classList) Remove(class string) {
	c.el.classes = slices.DeleteFunc(c.el.classes, func(s string) bool { return s == class })
	c.el.render()
}

// Form - форма tview с привязанными элементами контракта dom.
type Form struct {
	*Element

	form      *tview.Form
	errorView *tview.TextView
	submit    *Element
	inputs    []*tview.InputField
	listeners map[string][]func(dom.Event)
}

// NewForm - строит форму вида name из описаний полей с кнопкой отправки submitLabel.
func NewForm(name string, fields []FieldSpec, submitLabel string) *Form {
	f := &Form{
		Element:   newElement("form", map[string]string{"id": dom.FormID, "name": name}),
		form:      tview.NewForm(),
		errorView: tview.NewTextView(),
		listeners: make(map[string][]func(dom.Event)),
	}
	f.box = f.form.Box

	for _, field := range fields {
		width := field.Width
		if width == 0 {
			width = 30
		}
		input := tview.NewInputField().SetLabel(field.Label).SetFieldWidth(width)
		if field.Type == "password" {
			input.SetMaskCharacter('*')
		}
		f.form.AddFormItem(input)
		f.inputs = append(f.inputs, input)

		attrs := map[string]string{"type": field.Type}
		if field.Role != "" {
			attrs[dom.RoleAttribute] = field.Role
		}
		inputEl := newElement("input", attrs)
		inputEl.input = input

		container := newElement("div", nil, "form-field")
		container.label = field.Label
		container.children = []*Element{inputEl}
		f.children = append(f.children, container)
	}

	f.errorView.SetTextColor(tcell.ColorRed)
	errorEl := newElement("div", nil, "form-error")
	errorEl.view = f.errorView
	f.children = append(f.children, errorEl)

	f.form.AddButton(submitLabel, func() { f.RequestSubmit() })
	button := f.form.GetButton(f.form.GetButtonCount() - 1)
	f.submit = newElement("input", map[string]string{"type": "submit", "name": dom.SubmitControl})
	f.submit.button = button
	f.children = append(f.children, f.submit)

	return f
}

// Primitive - форма tview для размещения на странице.
func (f *Form) Primitive() *tview.Form {
	return f.form
}

// ErrorView - элемент вывода ошибки уровня формы.
func (f *Form) ErrorView() *tview.TextView {
	return f.errorView
}

// Input - поле ввода с индексом i.
func (f *Form) Input(i int) *tview.InputField {
	return f.inputs[i]
}

func (f *Form) Control(name string) (dom.Element, bool) {
	if name == dom.SubmitControl {
		return f.submit, true
	}
	return nil, false
}

func (f *Form) AddEventListener(eventType string, listener func(dom.Event)) {
	f.listeners[eventType] = append(f.listeners[eventType], listener)
}

// RequestSubmit - нажатие на кнопку отправки. Отключенная кнопка событие не порождает.
func (f *Form) RequestSubmit() (dom.Event, bool) {
	if f.submit.Disabled() {
		return nil, false
	}
	ev := dom.NewEvent(dom.SubmitEvent)
	for _, l := range f.listeners[dom.SubmitEvent] {
		l(ev)
	}
	return ev, true
}

// Document - страница интерфейса с одной формой.
type Document struct {
	form    *Form
	ready   []func()
	isReady bool
}

// NewDocument - создает страницу с формой form, form может быть nil.
func NewDocument(form *Form) *Document {
	return &Document{form: form}
}

func (d *Document) FormByID(id string) (dom.Form, bool) {
	if d.form == nil || id != dom.FormID {
		return nil, false
	}
	return d.form, true
}

func (d *Document) OnReady(fn func()) {
	if d.isReady {
		fn()
		return
	}
	d.ready = append(d.ready, fn)
}

// Ready - помечает страницу готовой, вызывается после построения интерфейса.
func (d *Document) Ready() {
	if d.isReady {
		return
	}
	d.isReady = true
	pending := d.ready
	d.ready = nil
	for _, fn := range pending {
		fn()
	}
}
