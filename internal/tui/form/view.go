package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
	"github.com/alexisbeaulieu97/ooo/internal/tui/components"
)

const (
	formTitle          = "🏖️ Out of Office Generator"
	messagePlaceholder = "Your generated message will appear here..."
	helpText           = "tab/↑↓ move • ←/→ change selection • enter/ctrl+g generate • ctrl+y copy • ctrl+r clear • esc quit"
	maxMessageWidth    = 80
)

// View renders the current state of the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(formTitle))

	sections = append(sections,
		components.NewSelector("Tone", options(composer.Tones(), m.tone, composer.Tone.Label), Row(m.focus) == RowTone).View(),
		components.NewSelector("Holiday", options(composer.Holidays(), m.holiday, composer.Holiday.Label), Row(m.focus) == RowHoliday).View(),
		components.NewSelector("Template", options(composer.Families(), m.family, composer.Family.Label), Row(m.focus) == RowFamily).View(),
	)

	sections = append(sections, sectionStyle.Render(m.renderInputs()))
	sections = append(sections, sectionStyle.Render(m.renderActions()))
	sections = append(sections, m.renderMessage())

	if m.notice != "" {
		style := noticeStyle
		if m.noticeErr {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.notice))
	}

	sections = append(sections, helpStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func options[T comparable](values []T, selected T, label func(T) string) []components.Option {
	opts := make([]components.Option, len(values))
	for i, v := range values {
		opts[i] = components.Option{Label: label(v), Selected: v == selected}
	}
	return opts
}

func (m Model) renderInputs() string {
	focused, _ := m.focusedField()

	lines := make([]string, 0, len(m.fields))
	for _, field := range m.fields {
		marker := "  "
		label := labelStyle.Render(field.Label())
		if field == focused {
			marker = "› "
			label = focusedLabel.Render(field.Label())
		}
		lines = append(lines, marker+label+m.inputs[field].View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderActions() string {
	generate := actionStyle.Render("🔄 Generate Message")
	copyLabel := "📋 Copy to Clipboard"
	copyButton := actionStyle.Render(copyLabel)
	if m.message.Empty() {
		copyButton = disabledStyle.Render(copyLabel)
	}
	return "  " + generate + "  " + copyButton
}

func (m Model) renderMessage() string {
	style := messageStyle
	if m.width > 4 {
		style = style.Width(min(m.width-4, maxMessageWidth))
	}

	if m.message.Empty() {
		return style.Render(placeholderStyle.Render(messagePlaceholder))
	}
	return style.Render(m.message.Text)
}
