package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/config"
	"tasktrack/internal/service"
	"tasktrack/internal/store"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T, titles ...string) (Model, *store.Store) {
	t.Helper()
	s := store.New()
	for _, title := range titles {
		s.CreateTask(title, nil, 2)
	}
	return New(s, config.Default(t.TempDir())), s
}

func TestView_Empty(t *testing.T) {
	m, _ := newModel(t)

	view := m.View()
	if !strings.Contains(view, "No tasks available") {
		t.Errorf("expected empty message, got:\n%s", view)
	}
}

func TestView_ListsTasks(t *testing.T) {
	m, _ := newModel(t, "Buy milk", "Call mom")

	view := m.View()
	for _, want := range []string{
		"1. [ID: 1] Buy milk - Priority: 2 (In Progress)",
		"2. [ID: 2] Call mom - Priority: 2 (In Progress)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestAddTask(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, "a")
	if m.mode != modeForm {
		t.Fatal("expected form mode after 'a'")
	}
	m = typeText(t, m, "Buy milk")
	m = press(t, m, "tab")
	m = typeText(t, m, "two litres")
	m = press(t, m, "tab")
	m = typeText(t, m, "4")
	m = press(t, m, "enter")

	if m.mode != modeList {
		t.Error("expected list mode after submit")
	}
	entries := s.ListTasks()
	if len(entries) != 1 {
		t.Fatalf("expected 1 task, got %d", len(entries))
	}
	task := entries[0].Task
	if task.Title != "Buy milk" || task.Description == nil || *task.Description != "two litres" || task.Priority != 4 {
		t.Errorf("unexpected task %+v", task)
	}
	if !strings.Contains(m.View(), "Task created: [ID: 1] Buy milk") {
		t.Errorf("expected confirmation in view, got:\n%s", m.View())
	}
}

func TestAddTask_DefaultPriority(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "No priority")
	m = press(t, m, "enter")

	if got := s.ListTasks()[0].Task.Priority; got != service.DefaultPriority {
		t.Errorf("expected default priority, got %d", got)
	}
	if s.ListTasks()[0].Task.Description != nil {
		t.Error("expected no description")
	}
}

func TestAddTask_InvalidPriority(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "Task")
	m = press(t, m, "tab", "tab")
	m = typeText(t, m, "9")
	m = press(t, m, "enter")

	if got := s.ListTasks()[0].Task.Priority; got != service.DefaultPriority {
		t.Errorf("expected default priority, got %d", got)
	}
	if !strings.Contains(m.status, "invalid priority, using default 3") {
		t.Errorf("expected notice in status, got %q", m.status)
	}
}

func TestAddTask_TitleRequired(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, "a", "enter")

	if m.mode != modeForm {
		t.Error("expected to stay in the form")
	}
	if s.Len() != 0 {
		t.Errorf("expected no task, got %d", s.Len())
	}
	if !m.statusErr || m.status != "error: title required" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestAddTask_Cancel(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "never")
	m = press(t, m, "esc")

	if m.mode != modeList {
		t.Error("expected list mode after esc")
	}
	if s.Len() != 0 {
		t.Errorf("expected no task, got %d", s.Len())
	}
}

func TestForm_QuitKeyIsText(t *testing.T) {
	m, s := newModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "quiz")
	m = press(t, m, "enter")

	if s.Len() != 1 || s.ListTasks()[0].Task.Title != "quiz" {
		t.Errorf("expected task \"quiz\", got %+v", s.ListTasks())
	}
}

func TestToggle(t *testing.T) {
	m, s := newModel(t, "Buy milk")

	m = press(t, m, "x")
	if !s.ListTasks()[0].Task.Completed {
		t.Fatal("expected task completed after toggle")
	}
	if m.status != "Task status changed: Buy milk -> Done" {
		t.Errorf("unexpected status %q", m.status)
	}

	m = press(t, m, "enter")
	if s.ListTasks()[0].Task.Completed {
		t.Error("expected task back in progress after second toggle")
	}
}

func TestMoveAndDelete(t *testing.T) {
	m, s := newModel(t, "a", "b", "c")

	m = press(t, m, "j", "down", "k")
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}

	m = press(t, m, "d")
	entries := s.ListTasks()
	if len(entries) != 2 || entries[0].Task.ID != 1 || entries[1].Task.ID != 3 {
		t.Errorf("expected task 2 deleted, got %+v", entries)
	}

	// Delete the last row; cursor must stay in range
	m = press(t, m, "j", "d")
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}
	m = press(t, m, "d")
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}

	// Keys on an empty list do nothing
	m = press(t, m, "d", "x", "e")
	if m.mode != modeList {
		t.Error("edit opened on empty list")
	}
}

func TestCursorBounds(t *testing.T) {
	m, _ := newModel(t, "a", "b")

	m = press(t, m, "k", "up")
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
	m = press(t, m, "j", "j", "j")
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}
}

func TestEdit(t *testing.T) {
	m, s := newModel(t, "Buy milk")

	m = press(t, m, "e")
	if m.mode != modeForm || m.editID != 1 {
		t.Fatalf("expected edit form for task 1, mode %d id %d", m.mode, m.editID)
	}
	if got := m.inputs[fieldTitle].Value(); got != "Buy milk" {
		t.Errorf("expected prefilled title, got %q", got)
	}
	if !strings.Contains(m.View(), "Edit task 1") {
		t.Errorf("expected edit heading, got:\n%s", m.View())
	}

	m = typeText(t, m, " now")
	m = press(t, m, "enter")

	task := s.ListTasks()[0].Task
	if task.Title != "Buy milk now" {
		t.Errorf("expected updated title, got %q", task.Title)
	}
	if task.Priority != 2 {
		t.Errorf("expected priority kept at 2, got %d", task.Priority)
	}
	if !strings.HasPrefix(m.status, "Task updated: ") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestEdit_BlankTitleKeepsTitle(t *testing.T) {
	m, s := newModel(t, "Buy milk")

	m = press(t, m, "e")
	m.inputs[fieldTitle].SetValue("   ")
	m.inputs[fieldPriority].SetValue("4")
	m = press(t, m, "enter")

	task := s.ListTasks()[0].Task
	if task.Title != "Buy milk" {
		t.Errorf("expected title kept, got %q", task.Title)
	}
	if task.Priority != 4 {
		t.Errorf("expected priority 4, got %d", task.Priority)
	}
	if m.statusErr {
		t.Errorf("unexpected error status %q", m.status)
	}
}

func TestStyles_NoColor(t *testing.T) {
	s := store.New()
	cfg := config.Default(t.TempDir())

	colored := New(s, cfg)
	if _, ok := colored.styles.selected.GetForeground().(lipgloss.NoColor); ok {
		t.Error("expected a foreground color on the selected row")
	}

	cfg.Display.Color = false
	plain := New(s, cfg)
	for name, st := range map[string]lipgloss.Style{
		"title":    plain.styles.title,
		"selected": plain.styles.selected,
		"err":      plain.styles.err,
		"help":     plain.styles.help,
	} {
		if _, ok := st.GetForeground().(lipgloss.NoColor); !ok {
			t.Errorf("%s: expected no foreground, got %v", name, st.GetForeground())
		}
		if _, ok := st.GetBackground().(lipgloss.NoColor); !ok {
			t.Errorf("%s: expected no background, got %v", name, st.GetBackground())
		}
		if st.GetBold() {
			t.Errorf("%s: expected no bold", name)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if next.(Model).width != 100 {
		t.Errorf("expected width 100, got %d", next.(Model).width)
	}
}
