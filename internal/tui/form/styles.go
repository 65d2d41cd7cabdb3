package form

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("245"))
	focusedLabel = lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("205")).Bold(true)
	sectionStyle = lipgloss.NewStyle().MarginTop(1)

	actionStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("99"))
	disabledStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240")).Faint(true)

	messageStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)
