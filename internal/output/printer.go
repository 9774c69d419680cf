package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/service"
)

// Styles holds the lipgloss styles a Printer applies.
type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Done    lipgloss.Style
}

// DefaultStyles returns the color styles rendered for r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		Key:     r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")),
		Done:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Printer writes menu output, optionally styled.
type Printer struct {
	w      io.Writer
	color  bool
	styles Styles
}

// NewPrinter creates a Printer writing to w. Without color, text is written as-is.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{w: w, color: color}
	if color {
		p.styles = DefaultStyles(lipgloss.NewRenderer(w))
	}
	return p
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Println writes an unstyled line.
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.w, text)
}

// Success writes a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(p.styles.Success, fmt.Sprintf(format, args...)))
}

// Warn writes a notice that did not stop the operation.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(p.styles.Warn, fmt.Sprintf(format, args...)))
}

// Error writes an "error: " line for a rejected answer.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(p.styles.Error, "error: "+fmt.Sprintf(format, args...)))
}

// Menu writes the main menu.
func (p *Printer) Menu(items []MenuItem) {
	fmt.Fprintln(p.w, p.render(p.styles.Title, MenuTitle))
	for _, item := range items {
		item.Key = p.render(p.styles.Key, item.Key)
		fmt.Fprintln(p.w, FormatMenuItem(item))
	}
}

// Entries writes a task listing, or EmptyList when entries is empty.
func (p *Printer) Entries(entries []service.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.w, EmptyList)
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.render(p.styles.Title, ListHeader))
	for _, e := range entries {
		line := FormatEntry(e)
		if e.Task.Completed {
			line = p.render(p.styles.Done, line)
		}
		fmt.Fprintln(p.w, line)
	}
}
