// Package tui provides the full-screen task interface.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasktrack/internal/config"
	"tasktrack/internal/output"
	"tasktrack/internal/service"
)

type mode int

const (
	modeList mode = iota
	modeForm
)

// Form field indices
const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldCount // Total number of fields
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Priority"}

// Model is the bubbletea model for the task interface.
type Model struct {
	svc     service.Service
	cfg     *config.Config
	styles  styles
	entries []service.Entry
	cursor  int
	width   int

	mode   mode
	inputs []textinput.Model
	focus  int
	editID int // 0 while adding a task

	status    string
	statusErr bool
}

// New creates a model over svc.
func New(svc service.Service, cfg *config.Config) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = 40
		inputs[i].CharLimit = 200
	}
	inputs[fieldDescription].Placeholder = "optional"
	inputs[fieldPriority].CharLimit = 3

	m := Model{
		svc:    svc,
		cfg:    cfg,
		styles: newStyles(cfg.Display.Color),
		inputs: inputs,
	}
	m.refresh()
	return m
}

// Run starts the interface and blocks until the user quits or ctx ends.
func Run(ctx context.Context, svc service.Service, cfg *config.Config, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(svc, cfg),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "a":
		return m.openForm(nil)

	case "e":
		if task, ok := m.selected(); ok {
			return m.openForm(&task)
		}

	case "enter", " ", "x":
		if task, ok := m.selected(); ok {
			t, err := m.svc.ToggleCompletion(task.ID)
			if err != nil {
				m.setError(err)
			} else {
				m.setStatus("Task status changed: " + output.FormatToggle(t))
			}
			m.refresh()
		}

	case "d":
		if task, ok := m.selected(); ok {
			if err := m.svc.DeleteTask(task.ID); err != nil {
				m.setError(err)
			} else {
				m.setStatus(fmt.Sprintf("Task deleted: %s", task.Title))
			}
			m.refresh()
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.setStatus("Cancelled")
		return m, nil

	case "tab", "down":
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd

	case "shift+tab", "up":
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// openForm switches to the form, prefilled from task when editing.
func (m Model) openForm(task *service.Task) (tea.Model, tea.Cmd) {
	m.mode = modeForm
	m.editID = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.inputs[fieldPriority].Placeholder = strconv.Itoa(int(m.cfg.DefaultPriority()))

	if task != nil {
		m.editID = task.ID
		m.inputs[fieldTitle].SetValue(task.Title)
		if task.Description != nil {
			m.inputs[fieldDescription].SetValue(*task.Description)
		}
		m.inputs[fieldPriority].SetValue(strconv.Itoa(int(task.Priority)))
	}

	m.status = ""
	cmd := m.focusField(fieldTitle)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

// submit applies the form. Empty fields mean "keep" when editing, as does a blank title.
func (m Model) submit() (tea.Model, tea.Cmd) {
	title := m.inputs[fieldTitle].Value()
	desc := m.inputs[fieldDescription].Value()
	rawPriority := m.inputs[fieldPriority].Value()

	if m.editID != 0 {
		u := service.TaskUpdate{Priority: service.ParseOptionalPriority(rawPriority)}
		if strings.TrimSpace(title) != "" {
			u.Title = &title
		}
		if desc != "" {
			u.Description = &desc
		}
		task, err := m.svc.UpdateTask(m.editID, u)
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus("Task updated: " + output.FormatTask(task))
		}
		m.mode = modeList
		m.refresh()
		return m, nil
	}

	if strings.TrimSpace(title) == "" {
		m.setError(fmt.Errorf("title required"))
		return m, nil
	}

	def := m.cfg.DefaultPriority()
	priority := def
	notice := ""
	if strings.TrimSpace(rawPriority) != "" {
		var ok bool
		if priority, ok = service.ParsePriority(rawPriority, def); !ok {
			notice = fmt.Sprintf(" (invalid priority, using default %d)", def)
		}
	}

	var descPtr *string
	if desc != "" {
		descPtr = &desc
	}
	task := m.svc.CreateTask(title, descPtr, priority)

	m.mode = modeList
	m.refresh()
	m.cursor = len(m.entries) - 1
	m.setStatus("Task created: " + output.FormatTask(task) + notice)
	return m, nil
}

func (m Model) selected() (service.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return service.Task{}, false
	}
	return m.entries[m.cursor].Task, true
}

// refresh reloads the listing and keeps the cursor in range.
func (m *Model) refresh() {
	m.entries = m.svc.ListTasks()
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "error: " + err.Error()
	m.statusErr = true
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(output.MenuTitle))
	b.WriteString("\n\n")

	if m.mode == modeForm {
		m.viewForm(&b)
	} else {
		m.viewList(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(m.styles.err.Render(m.status))
		} else {
			b.WriteString(m.styles.status.Render(m.status))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewList(b *strings.Builder) {
	if len(m.entries) == 0 {
		b.WriteString(output.EmptyList + "\n")
	}
	for i, e := range m.entries {
		line := output.FormatEntry(e)
		switch {
		case i == m.cursor:
			b.WriteString(m.styles.selected.Render("> " + line))
		case e.Task.Completed:
			b.WriteString(m.styles.done.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("a add • e edit • enter toggle • d delete • j/k move • q quit"))
	b.WriteString("\n")
}

func (m Model) viewForm(b *strings.Builder) {
	if m.editID != 0 {
		fmt.Fprintf(b, "Edit task %d\n\n", m.editID)
	} else {
		b.WriteString("New task\n\n")
	}
	for i, input := range m.inputs {
		b.WriteString(m.styles.label.Render(fieldLabels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("enter save • tab next field • esc cancel"))
	b.WriteString("\n")
}
