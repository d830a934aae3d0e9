package signup

import (
	"context"
	"strings"
	"time"

	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// submitTimeout bounds one registration call.
const submitTimeout = 10 * time.Second

// Field indexes, in focus order.
const (
	FieldName = iota
	FieldEmail
	FieldPassword
	fieldCount
)

var fieldLabels = [fieldCount]string{"name", "email", "password"}

// SubmittedMsg carries the result of a submission back to the form.
type SubmittedMsg struct {
	Result Result
}

// Form is the sign-up form component.
type Form struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	focused    bool
	submitting bool
	errors     map[string]string

	submitter *Submitter
}

// New creates a blurred form that submits through s.
func New(s *Submitter) Form {
	f := Form{submitter: s, errors: make(map[string]string)}

	placeholders := [fieldCount]string{"Jane Doe", "jane@example.com", "at least 6 characters"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		ti.Width = 28
		f.inputs[i] = ti
	}
	f.inputs[FieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[FieldPassword].EchoCharacter = '•'
	return f
}

// Focused reports whether the form has the keyboard.
func (f Form) Focused() bool {
	return f.focused
}

// FocusIndex returns the index of the focused field.
func (f Form) FocusIndex() int {
	return f.focus
}

// Submitting reports whether a submission is in flight.
func (f Form) Submitting() bool {
	return f.submitting
}

// Errors returns the inline error per field label from the last submission.
func (f Form) Errors() map[string]string {
	return f.errors
}

// Values returns the entered fields.
func (f Form) Values() Fields {
	return Fields{
		Name:     f.inputs[FieldName].Value(),
		Email:    f.inputs[FieldEmail].Value(),
		Password: f.inputs[FieldPassword].Value(),
	}
}

// SetValues fills the inputs.
func (f Form) SetValues(v Fields) Form {
	f.inputs[FieldName].SetValue(v.Name)
	f.inputs[FieldEmail].SetValue(v.Email)
	f.inputs[FieldPassword].SetValue(v.Password)
	return f
}

// Focus gives the form the keyboard, on the last focused field.
func (f Form) Focus() (Form, tea.Cmd) {
	f.focused = true
	return f, f.inputs[f.focus].Focus()
}

// Blur takes the keyboard away from the form.
func (f Form) Blur() Form {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f
}

// NextField moves focus forward, wrapping around.
func (f Form) NextField() (Form, tea.Cmd) {
	return f.moveFocus(1)
}

// PrevField moves focus backward, wrapping around.
func (f Form) PrevField() (Form, tea.Cmd) {
	return f.moveFocus(-1)
}

func (f Form) moveFocus(delta int) (Form, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	if !f.focused {
		return f, nil
	}
	return f, f.inputs[f.focus].Focus()
}

// Submit starts a submission. The returned command runs validation,
// registration and toast publishing off the event loop and answers with a
// SubmittedMsg. Submitting while a submission is in flight does nothing.
func (f Form) Submit() (Form, tea.Cmd) {
	if f.submitting || f.submitter == nil {
		return f, nil
	}
	f.submitting = true

	s, values := f.submitter, f.Values()
	return f, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return SubmittedMsg{Result: s.Submit(ctx, values)}
	}
}

// Update handles submission results and forwards everything else to the
// focused input.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if msg, ok := msg.(SubmittedMsg); ok {
		f.submitting = false
		f.errors = make(map[string]string, len(msg.Result.FieldErrors))
		for _, fe := range msg.Result.FieldErrors {
			f.errors[fe.Field] = fe.Message
		}
		if msg.Result.OK() {
			f = f.SetValues(Fields{})
			f.inputs[f.focus].Blur()
			f.focus = FieldName
			if f.focused {
				return f, f.inputs[f.focus].Focus()
			}
		}
		return f, nil
	}

	if !f.focused {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the form.
func (f Form) View() string {
	th := styles.GetActiveTheme()

	var b strings.Builder
	b.WriteString(th.Title.Render("Create your account"))
	b.WriteString("\n")

	for i, in := range f.inputs {
		label := th.Label
		if f.focused && i == f.focus {
			label = th.FocusedLabel
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
		if msg, ok := f.errors[fieldLabels[i]]; ok {
			b.WriteString(lipgloss.NewStyle().PaddingLeft(th.Label.GetWidth()).Render(th.Error.Render(msg)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	button := "Sign up"
	if f.submitting {
		button = "Signing up…"
	}
	b.WriteString(th.Button.Render(button))

	box := th.FormBox
	if f.focused {
		box = box.BorderForeground(th.PrimaryColor)
	}
	return box.Render(b.String())
}
