package signup

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/toaster/internal/toast"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestForm(t *testing.T) (Form, *toast.Store) {
	t.Helper()
	store := toast.NewStore()
	return New(NewSubmitter(store, NewMemoryRegistrar(0), nil)), store
}

func typeString(f Form, s string) Form {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestFormTypingRequiresFocus(t *testing.T) {
	f, _ := newTestForm(t)

	f = typeString(f, "ignored")
	if got := f.Values().Name; got != "" {
		t.Errorf("blurred form accepted input: %q", got)
	}

	f, _ = f.Focus()
	f = typeString(f, "Jane")
	f, _ = f.NextField()
	f = typeString(f, "jane@example.com")

	want := Fields{Name: "Jane", Email: "jane@example.com"}
	if got := f.Values(); got != want {
		t.Errorf("Values() = %+v, want %+v", got, want)
	}
}

func TestFormFocusWraps(t *testing.T) {
	f, _ := newTestForm(t)
	f, _ = f.Focus()

	f, _ = f.PrevField()
	if f.FocusIndex() != FieldPassword {
		t.Errorf("PrevField from first = %d, want password", f.FocusIndex())
	}
	f, _ = f.NextField()
	if f.FocusIndex() != FieldName {
		t.Errorf("NextField from last = %d, want name", f.FocusIndex())
	}

	f = f.Blur()
	if f.Focused() {
		t.Error("Blur() left the form focused")
	}
}

func TestFormSubmitInvalid(t *testing.T) {
	f, store := newTestForm(t)
	f = f.SetValues(Fields{Name: "", Email: "jane@example.com", Password: "secret"})

	f, cmd := f.Submit()
	if cmd == nil {
		t.Fatal("Submit() returned no command")
	}
	if !f.Submitting() {
		t.Error("form should be submitting")
	}
	if _, again := f.Submit(); again != nil {
		t.Error("second Submit() while in flight should do nothing")
	}

	msg, ok := cmd().(SubmittedMsg)
	if !ok {
		t.Fatalf("command returned %T, want SubmittedMsg", cmd())
	}
	f, _ = f.Update(msg)

	if f.Submitting() {
		t.Error("form still submitting after result")
	}
	if got := f.Errors()["name"]; got != "Name is required" {
		t.Errorf("inline name error = %q", got)
	}
	if store.Len() != 2 {
		t.Errorf("store has %d toasts, want field toast + summary", store.Len())
	}
	if !strings.Contains(f.View(), "Name is required") {
		t.Error("view does not show the inline error")
	}
	if f.Values().Email != "jane@example.com" {
		t.Error("invalid submission must keep the entered values")
	}
}

func TestFormSubmitSuccessResets(t *testing.T) {
	f, store := newTestForm(t)
	f, _ = f.Focus()
	f, _ = f.NextField()
	f = f.SetValues(Fields{Name: "Jane", Email: "jane@example.com", Password: "secret"})

	f, cmd := f.Submit()
	f, _ = f.Update(cmd())

	if f.Values() != (Fields{}) {
		t.Errorf("values after success = %+v, want empty", f.Values())
	}
	if f.FocusIndex() != FieldName {
		t.Errorf("focus after success = %d, want name", f.FocusIndex())
	}
	if len(f.Errors()) != 0 {
		t.Errorf("errors after success = %v", f.Errors())
	}
	if last, ok := store.Snapshot().Last(); !ok || last.Title != SuccessTitle {
		t.Errorf("last toast = %+v, want success", last)
	}
}

func TestFormSubmitterCanBeAbsent(t *testing.T) {
	f := New(nil)
	if _, cmd := f.Submit(); cmd != nil {
		t.Error("Submit() without submitter should do nothing")
	}
}
