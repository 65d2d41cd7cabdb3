package form

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ooo/internal/composer"
)

// Result summarises a finished form session.
type Result struct {
	Message   composer.Message
	Generated int
}

// Run shows the form until the user quits and returns the last message.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (Result, error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run form: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("run form: unexpected model %T", final)
	}
	return Result{Message: m.message, Generated: m.generated}, nil
}
