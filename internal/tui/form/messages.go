package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ooo/internal/clipboard"
)

// CopiedMsg reports the outcome of a clipboard copy.
type CopiedMsg struct {
	Err error
}

// copyCmd sends text to the clipboard off the event loop.
func copyCmd(c clipboard.Copier, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: clipboard.Write(c, text)}
	}
}
