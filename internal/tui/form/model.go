// Package form implements the interactive single-screen generator form.
package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ooo/internal/clipboard"
	"github.com/alexisbeaulieu97/ooo/internal/composer"
	"github.com/alexisbeaulieu97/ooo/internal/config"
)

// Generator renders a message for a request. *composer.Composer satisfies it.
type Generator interface {
	Generate(req composer.Request) (composer.Message, error)
}

// Row identifies a focusable row of the form.
type Row int

const (
	RowTone Row = iota
	RowHoliday
	RowFamily
	firstInputRow
)

// Options configures a new form Model.
type Options struct {
	Generator Generator
	Copier    clipboard.Copier
	Defaults  config.Defaults
}

// Model is the Bubbletea state of the generator form. It owns every piece
// of mutable UI state; the composer stays stateless.
type Model struct {
	generator Generator
	copier    clipboard.Copier

	tone    composer.Tone
	holiday composer.Holiday
	family  composer.Family

	inputs   map[composer.Field]textinput.Model
	fields   []composer.Field
	focus    int
	prefills composer.FieldSet

	message   composer.Message
	generated int
	notice    string
	noticeErr bool

	width    int
	quitting bool
}

// NewModel constructs the form with selections and fields pre-filled from opts.Defaults.
func NewModel(opts Options) Model {
	gen := opts.Generator
	if gen == nil {
		gen = composer.New()
	}

	defaults := opts.Defaults
	m := Model{
		generator: gen,
		copier:    opts.Copier,
		tone:      orDefault(defaults.Tone, composer.DefaultTone),
		holiday:   orDefault(defaults.Holiday, composer.DefaultHoliday),
		family:    orDefault(defaults.Family, composer.DefaultFamily),
		inputs:    make(map[composer.Field]textinput.Model),
		prefills:  defaults.Fields,
	}

	for _, family := range composer.Families() {
		for _, field := range composer.FieldsFor(family) {
			if _, exists := m.inputs[field]; exists {
				continue
			}
			m.inputs[field] = newInput(field, defaults.Fields.Get(field))
		}
	}
	m.fields = composer.FieldsFor(m.family)

	return m
}

func newInput(field composer.Field, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = field.Placeholder()
	in.CharLimit = 120
	in.Width = 48
	in.SetValue(value)
	return in
}

func orDefault[T ~string](value, fallback T) T {
	if value == "" {
		return fallback
	}
	return value
}

// Init starts the cursor blink for the text inputs.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Tone returns the selected tone.
func (m Model) Tone() composer.Tone { return m.tone }

// Holiday returns the selected holiday.
func (m Model) Holiday() composer.Holiday { return m.holiday }

// Family returns the selected template family.
func (m Model) Family() composer.Family { return m.family }

// Message returns the last generated message, if any.
func (m Model) Message() composer.Message { return m.message }

// Notice returns the status line text and whether it reports a failure.
func (m Model) Notice() (string, bool) { return m.notice, m.noticeErr }

// Focus returns the focused row. Rows at or after firstInputRow are inputs.
func (m Model) Focus() Row { return Row(m.focus) }

// Quitting reports whether the user asked to leave the form.
func (m Model) Quitting() bool { return m.quitting }

// FieldSet snapshots the current input values.
func (m Model) FieldSet() composer.FieldSet {
	var fields composer.FieldSet
	for field, in := range m.inputs {
		fields = fields.With(field, in.Value())
	}
	return fields
}

// Request builds the composer request for the current selections.
func (m Model) Request() composer.Request {
	return composer.Request{
		Fields:  m.FieldSet(),
		Tone:    m.tone,
		Holiday: m.holiday,
		Family:  m.family,
	}
}

func (m Model) rowCount() int {
	return int(firstInputRow) + len(m.fields)
}

// focusedField returns the field of the focused input row.
func (m Model) focusedField() (composer.Field, bool) {
	idx := m.focus - int(firstInputRow)
	if idx < 0 || idx >= len(m.fields) {
		return "", false
	}
	return m.fields[idx], true
}

func (m *Model) setFocus(row int) tea.Cmd {
	count := m.rowCount()
	row = ((row % count) + count) % count
	m.focus = row

	var cmd tea.Cmd
	for field, in := range m.inputs {
		in.Blur()
		m.inputs[field] = in
	}
	if field, ok := m.focusedField(); ok {
		in := m.inputs[field]
		cmd = in.Focus()
		m.inputs[field] = in
	}
	return cmd
}
