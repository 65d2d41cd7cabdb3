package form

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
)

func TestViewShowsFormBeforeGeneration(t *testing.T) {
	view := NewModel(Options{}).View()

	require.Contains(t, view, "Out of Office Generator")
	for _, tone := range composer.Tones() {
		require.Contains(t, view, tone.Label())
	}
	require.Contains(t, view, "Christmas")
	require.Contains(t, view, "Your name")
	require.Contains(t, view, "Emergency contact")
	require.NotContains(t, view, "Activity")
	require.Contains(t, view, messagePlaceholder)
	require.Contains(t, view, "Copy to Clipboard")
}

func TestViewShowsGeneratedMessage(t *testing.T) {
	m := NewModel(Options{Generator: firstPicks()})
	m, _ = press(t, m, keyGenerate)

	view := m.View()
	require.NotContains(t, view, messagePlaceholder)
	require.Contains(t, view, "I am currently out of office and will return on [return date].")
	require.Contains(t, view, "For urgent matters, please contact [emergency contact].")
}

func TestViewShowsMadLibInputs(t *testing.T) {
	m := NewModel(Options{})
	m, _ = press(t, m, keyTab, keyTab, keyRight)

	view := m.View()
	require.Contains(t, view, "Activity")
	require.Contains(t, view, "Food")
	require.NotContains(t, view, "Return date")
}

func TestViewShowsNotice(t *testing.T) {
	m := NewModel(Options{})
	m, _ = press(t, m, keyCopy)
	require.Contains(t, m.View(), "nothing to copy")
}
