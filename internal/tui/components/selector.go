package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	selectorTitleStyle    = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("245"))
	focusedTitleStyle     = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("205")).Bold(true)
	selectedOptionStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("99")).Bold(true)
	unselectedOptionStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
)

// Option is one choice on a Selector row.
type Option struct {
	Label    string
	Selected bool
}

// Selector renders a single-choice row of toggle buttons.
type Selector struct {
	title   string
	options []Option
	focused bool
}

// NewSelector creates a Selector row.
func NewSelector(title string, options []Option, focused bool) Selector {
	return Selector{title: title, options: options, focused: focused}
}

// View renders the selector.
func (s Selector) View() string {
	marker := "  "
	title := selectorTitleStyle.Render(s.title)
	if s.focused {
		marker = "› "
		title = focusedTitleStyle.Render(s.title)
	}

	parts := make([]string, 0, len(s.options))
	for _, opt := range s.options {
		if opt.Selected {
			parts = append(parts, selectedOptionStyle.Render(opt.Label))
			continue
		}
		parts = append(parts, unselectedOptionStyle.Render(opt.Label))
	}

	return marker + title + strings.Join(parts, " ")
}
