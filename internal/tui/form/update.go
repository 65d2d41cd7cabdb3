package form

import (
	"fmt"
	"maps"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ooo/internal/clipboard"
	"github.com/alexisbeaulieu97/ooo/internal/composer"
)

// Update handles Bubbletea messages and updates model state. The returned
// model owns its own inputs; m is left untouched.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.inputs = maps.Clone(m.inputs)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case CopiedMsg:
		if msg.Err != nil {
			m.setNotice(fmt.Sprintf("Copy failed: %v", msg.Err), true)
			return m, nil
		}
		m.setNotice("Copied to clipboard", false)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)
	case "enter", "ctrl+g":
		m.generate()
		return m, nil
	case "ctrl+y":
		if m.message.Empty() {
			m.setNotice(clipboard.ErrNothingToCopy.Error(), true)
			return m, nil
		}
		return m, copyCmd(m.copier, m.message.Text)
	case "ctrl+r":
		m.reset()
		return m, nil
	case "left", "right":
		if Row(m.focus) < firstInputRow {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			return m, m.cycleSelection(step)
		}
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	field, ok := m.focusedField()
	if !ok {
		return m, nil
	}
	in, cmd := m.inputs[field].Update(msg)
	m.inputs[field] = in
	return m, cmd
}

// generate replaces the current message with a freshly composed one.
func (m *Model) generate() {
	msg, err := m.generator.Generate(m.Request())
	if err != nil {
		m.setNotice(fmt.Sprintf("Could not generate message: %v", err), true)
		return
	}
	m.message = msg
	m.generated++
	m.setNotice("", false)
}

// reset restores every input to its configured prefill.
func (m *Model) reset() {
	for field, in := range m.inputs {
		in.SetValue(m.prefills.Get(field))
		m.inputs[field] = in
	}
	m.message = composer.Message{}
	m.setNotice("Fields reset", false)
}

func (m *Model) cycleSelection(step int) tea.Cmd {
	switch Row(m.focus) {
	case RowTone:
		m.tone = cycle(composer.Tones(), m.tone, step)
	case RowHoliday:
		m.holiday = cycle(composer.Holidays(), m.holiday, step)
	case RowFamily:
		m.family = cycle(composer.Families(), m.family, step)
		m.fields = composer.FieldsFor(m.family)
		return m.setFocus(m.focus)
	}
	return nil
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func cycle[T comparable](values []T, current T, step int) T {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+step)%n+n)%n]
}
