// htmldom - реализация контракта dom поверх разобранного HTML документа.
// Используется в тестах и в утилитах без браузера. Документ не потокобезопасен:
// изменения должны выполняться из одной горутины либо быть упорядочены снаружи.
package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/abezemskiy/authforms/internal/client/dom"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// controlTags - теги, которые попадают в именованные элементы формы.
var controlTags = []string{"input", "button", "select", "textarea", "fieldset", "output", "object"}

// Document - HTML документ с обработчиками событий.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]func(dom.Event)
	ready     []func()
	isReady   bool
}

// Parse - разбирает HTML документ из r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html document error, %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]func(dom.Event)),
	}, nil
}

// ParseString - разбирает HTML документ из строки.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FormByID - возвращает форму с идентификатором id.
func (d *Document) FormByID(id string) (dom.Form, bool) {
	f, ok := d.Form(id)
	if !ok {
		return nil, false
	}
	return f, true
}

// Form - возвращает конкретную реализацию формы, чтобы тесты могли отправлять события.
func (d *Document) Form(id string) (*Form, bool) {
	el, ok := d.ElementByID(id)
	if !ok || el.node.Data != "form" {
		return nil, false
	}
	return &Form{Element: el}, true
}

// ElementByID - поиск элемента по атрибуту id.
func (d *Document) ElementByID(id string) (*Element, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

// QuerySelectorAll - элементы документа, подходящие под селектор.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(d.root, sel)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// OnReady - выполняет fn после вызова Ready, либо сразу, если документ уже готов.
func (d *Document) OnReady(fn func()) {
	if d.isReady {
		fn()
		return
	}
	d.ready = append(d.ready, fn)
}

// Ready - помечает документ готовым и выполняет отложенные функции (аналог DOMContentLoaded).
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

// String - текущее состояние документа в виде HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, node: n}
}

// Element - элемент HTML документа.
type Element struct {
	doc  *Document
	node *html.Node
}

func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute - устанавливает значение атрибута.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute - удаляет атрибут.
func (e *Element) RemoveAttribute(name string) {
	e.node.Attr = slices.DeleteFunc(e.node.Attr, func(a html.Attribute) bool { return a.Key == name })
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(e.node, sel)
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, e.doc.wrap(n))
	}
	return out
}

func (e *Element) ElementsByTagName(tag string) []dom.Element {
	var out []dom.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && n.Data == tag {
				out = append(out, e.doc.wrap(n))
			}
			return true
		})
	}
	return out
}

func (e *Element) ClassList() dom.ClassList {
	return classList{el: e}
}

// Value - значение элемента ввода берётся из атрибута value.
func (e *Element) Value() string {
	v, _ := e.Attribute("value")
	return v
}

// SetValue - имитирует ввод пользователя.
func (e *Element) SetValue(value string) {
	e.SetAttribute("value", value)
}

func (e *Element) Disabled() bool {
	_, ok := e.Attribute("disabled")
	return ok
}

func (e *Element) SetDisabled(disabled bool) {
	if disabled {
		e.SetAttribute("disabled", "")
		return
	}
	e.RemoveAttribute("disabled")
}

func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Text - текстовое содержимое элемента.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// Form - элемент формы.
type Form struct {
	*Element
}

func (f *Form) Control(name string) (dom.Element, bool) {
	var found *html.Node
	for c := f.node.FirstChild; c != nil && found == nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && slices.Contains(controlTags, n.Data) && attr(n, "name") == name {
				found = n
				return false
			}
			return true
		})
	}
	if found == nil {
		return nil, false
	}
	return f.doc.wrap(found), true
}

func (f *Form) AddEventListener(eventType string, listener func(dom.Event)) {
	byType, ok := f.doc.listeners[f.node]
	if !ok {
		byType = make(map[string][]func(dom.Event))
		f.doc.listeners[f.node] = byType
	}
	byType[eventType] = append(byType[eventType], listener)
}

// Listeners - количество обработчиков события eventType.
func (f *Form) Listeners(eventType string) int {
	return len(f.doc.listeners[f.node][eventType])
}

// Dispatch - отправляет событие eventType всем обработчикам формы.
func (f *Form) Dispatch(eventType string) dom.Event {
	ev := dom.NewEvent(eventType)
	for _, l := range f.doc.listeners[f.node][eventType] {
		l(ev)
	}
	return ev
}

// RequestSubmit - имитирует нажатие на кнопку отправки.
// Отключенная кнопка событие не порождает, тогда возвращается false.
func (f *Form) RequestSubmit() (dom.Event, bool) {
	if submit, ok := f.Control(dom.SubmitControl); ok && submit.Disabled() {
		return nil, false
	}
	return f.Dispatch(dom.SubmitEvent), true
}

type classList struct {
	el *Element
}

func (c classList) classes() []string {
	v, _ := c.el.Attribute("class")
	return strings.Fields(v)
}

func (c classList) Contains(class string) bool {
	return slices.Contains(c.classes(), class)
}

func (c classList) Add(class string) {
	classes := c.classes()
	if slices.Contains(classes, class) {
		return
	}
	c.el.SetAttribute("class", strings.Join(append(classes, class), " "))
}

func (c classList) Remove(class string) {
	classes := slices.DeleteFunc(c.classes(), func(s string) bool { return s == class })
	c.el.SetAttribute("class", strings.Join(classes, " "))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// walk - обход дерева в порядке документа, fn возвращает false для остановки.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
