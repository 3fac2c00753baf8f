package tuidom

import (
	"testing"

	"github.com/abezemskiy/authforms/internal/client/dom"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupForm() *Form {
	return NewForm("signup", []FieldSpec{
		{Label: "Email", Type: "email"},
		{Label: "Password", Type: "password", Role: "password"},
		{Label: "Confirm", Type: "password"},
	}, "Sign up")
}

func TestDocument(t *testing.T) {
	f := signupForm()
	doc := NewDocument(f)

	form, ok := doc.FormByID(dom.FormID)
	require.True(t, ok)
	name, _ := form.Attribute("name")
	assert.Equal(t, "signup", name)

	_, ok = doc.FormByID("other")
	assert.False(t, ok)
	_, ok = NewDocument(nil).FormByID(dom.FormID)
	assert.False(t, ok)

	calls := 0
	doc.OnReady(func() { calls++ })
	assert.Equal(t, 0, calls)
	doc.Ready()
	doc.Ready()
	assert.Equal(t, 1, calls)
}

func TestFields(t *testing.T) {
	f := signupForm()

	containers := f.QuerySelectorAll(dom.FieldSelector)
	require.Len(t, containers, 3)

	var types []string
	for _, c := range containers {
		inputs := c.ElementsByTagName(dom.InputTag)
		require.Len(t, inputs, 1)
		typ, _ := inputs[0].Attribute("type")
		types = append(types, typ)
	}
	assert.Equal(t, []string{"email", "password", "password"}, types)

	role, ok := containers[1].ElementsByTagName(dom.InputTag)[0].Attribute(dom.RoleAttribute)
	assert.True(t, ok)
	assert.Equal(t, "password", role)
	_, ok = containers[0].ElementsByTagName(dom.InputTag)[0].Attribute(dom.RoleAttribute)
	assert.False(t, ok)

	f.Input(0).SetText("a@b.com")
	assert.Equal(t, "a@b.com", containers[0].ElementsByTagName(dom.InputTag)[0].Value())
}

func TestErrorClass(t *testing.T) {
	f := signupForm()
	container := f.QuerySelectorAll(dom.FieldSelector)[0]

	container.ClassList().Add(dom.ErrorClass)
	container.ClassList().Add(dom.ErrorClass)
	assert.Equal(t, "Email"+ErrorMark, f.Input(0).GetLabel())

	container.ClassList().Remove(dom.ErrorClass)
	assert.Equal(t, "Email", f.Input(0).GetLabel())
	assert.False(t, container.ClassList().Contains(dom.ErrorClass))

	f.ClassList().Add(dom.ErrorClass)
	assert.Equal(t, tcell.ColorRed, f.Primitive().GetBorderColor())
	f.ClassList().Remove(dom.ErrorClass)
	assert.NotEqual(t, tcell.ColorRed, f.Primitive().GetBorderColor())

	boxes := f.QuerySelectorAll(dom.FormErrorSelector)
	require.Len(t, boxes, 1)
	boxes[0].SetText("error making authentication request")
	assert.Equal(t, "error making authentication request", f.ErrorView().GetText(true))
}

func TestSubmit(t *testing.T) {
	f := signupForm()
	submit, ok := f.Control(dom.SubmitControl)
	require.True(t, ok)
	_, ok = f.Control("other")
	assert.False(t, ok)

	calls := 0
	f.AddEventListener(dom.SubmitEvent, func(ev dom.Event) {
		calls++
		ev.PreventDefault()
	})

	ev, fired := f.RequestSubmit()
	require.True(t, fired)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, calls)

	submit.SetDisabled(true)
	assert.True(t, submit.Disabled())
	_, fired = f.RequestSubmit()
	assert.False(t, fired)
	assert.Equal(t, 1, calls)

	submit.SetDisabled(false)
	assert.False(t, submit.Disabled())
}
