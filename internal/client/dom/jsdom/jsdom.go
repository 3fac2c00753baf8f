//go:build js && wasm

// jsdom - реализация контракта dom поверх DOM браузера через syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/abezemskiy/authforms/internal/client/dom"
)

// Document - документ страницы браузера.
type Document struct {
	doc js.Value
}

// NewDocument - документ текущей страницы.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

func (d *Document) FormByID(id string) (dom.Form, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	if !el.InstanceOf(js.Global().Get("HTMLFormElement")) {
		return nil, false
	}
	return &Form{Element: &Element{v: el}}, true
}

// OnReady - выполняет fn по событию DOMContentLoaded, либо сразу, если документ уже разобран.
func (d *Document) OnReady(fn func()) {
	if d.doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	d.doc.Call("addEventListener", "DOMContentLoaded", cb)
}

// Element - элемент DOM.
type Element struct {
	v js.Value
}

func (e *Element) Attribute(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return elements(e.v.Call("querySelectorAll", selector))
}

func (e *Element) ElementsByTagName(tag string) []dom.Element {
	return elements(e.v.Call("getElementsByTagName", tag))
}

func (e *Element) ClassList() dom.ClassList {
	return classList{v: e.v.Get("classList")}
}

func (e *Element) Value() string {
	v := e.v.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) Disabled() bool {
	return e.v.Get("disabled").Truthy()
}

func (e *Element) SetDisabled(disabled bool) {
	e.v.Set("disabled", disabled)
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// Form - элемент формы.
type Form struct {
	*Element
}

func (f *Form) Control(name string) (dom.Element, bool) {
	el := f.v.Get("elements").Call("namedItem", name)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &Element{v: el}, true
}

// AddEventListener - регистрирует обработчик. Обработчик живет столько же, сколько страница.
func (f *Form) AddEventListener(eventType string, listener func(dom.Event)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		listener(&event{v: args[0]})
		return nil
	})
	f.v.Call("addEventListener", eventType, cb)
}

type event struct {
	v js.Value
}

func (e *event) Type() string { return e.v.Get("type").String() }

func (e *event) PreventDefault() { e.v.Call("preventDefault") }

func (e *event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }

type classList struct {
	v js.Value
}

func (c classList) Contains(class string) bool { return c.v.Call("contains", class).Bool() }

func (c classList) Add(class string) { c.v.Call("add", class) }

func (c classList) Remove(class string) { c.v.Call("remove", class) }

func elements(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}
