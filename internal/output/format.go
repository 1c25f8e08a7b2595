// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskpad/internal/model"
	"taskpad/internal/service"
)

// DueLayout is the display layout for due dates.
const DueLayout = "Jan 2, 2006"

// priorityWidth is the width of the widest label, "[medium]".
const priorityWidth = 8

// Theme styles output for a light or dark terminal.
// Writers that are not terminals get plain text.
type Theme struct {
	Dark     bool
	high     lipgloss.Style
	medium   lipgloss.Style
	low      lipgloss.Style
	due      lipgloss.Style
	emphasis lipgloss.Style
}

// NewTheme creates a theme that renders for w.
func NewTheme(w io.Writer, dark bool) *Theme {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(dark)

	return &Theme{
		Dark:     dark,
		high:     r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"}),
		medium:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FDE68A"}),
		low:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#86EFAC"}),
		due:      r.NewStyle().Faint(true),
		emphasis: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"}),
	}
}

// Name returns "dark" or "light".
func (t *Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

func (t *Theme) priority(p model.Priority) string {
	label := "[" + string(p) + "]"
	pad := strings.Repeat(" ", max(priorityWidth-len(label), 0))
	switch p {
	case model.PriorityHigh:
		return t.high.Render(label) + pad
	case model.PriorityLow:
		return t.low.Render(label) + pad
	default:
		return t.medium.Render(label) + pad
	}
}

// FormatTask formats a task line.
// Format: "{N:>4}  {[PRIORITY]:<8}  {TITLE}[  (due Mon D, YYYY)]\n"
func FormatTask(w io.Writer, t *Theme, num int, task model.Task) {
	line := fmt.Sprintf("%4d  %s  %s", num, t.priority(task.Priority), normalizeTitle(task.Title))
	if task.DueDate != nil {
		line += "  " + t.due.Render(fmt.Sprintf("(due %s)", task.DueDate.Format(DueLayout)))
	}
	fmt.Fprintln(w, line)
}

// FormatTaskDetail formats a multi-line description of one task.
func FormatTaskDetail(w io.Writer, t *Theme, task model.Task) {
	fmt.Fprintf(w, "id:       %s\n", task.ID)
	fmt.Fprintf(w, "title:    %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "priority: %s\n", strings.TrimSpace(t.priority(task.Priority)))
	fmt.Fprintf(w, "created:  %s\n", task.CreatedAt.Format(DueLayout))
	if task.DueDate != nil {
		fmt.Fprintf(w, "due:      %s\n", task.DueDate.Format(DueLayout))
	}
}

// FormatUser formats the signed-in user line.
func FormatUser(w io.Writer, t *Theme, u model.User) {
	fmt.Fprintf(w, "%s <%s>\n", t.emphasis.Render(u.Name), u.Email)
}

// FormatListName formats a remote list name for the lists command.
func FormatListName(w io.Writer, t *Theme, list service.TaskList) {
	title := normalizeTitle(list.Title)
	if list.IsDefault {
		title += " " + t.emphasis.Render("[default]")
	}
	fmt.Fprintln(w, title)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
