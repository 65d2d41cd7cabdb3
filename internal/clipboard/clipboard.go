// Package clipboard copies generated messages to the system clipboard.
package clipboard

import (
	"errors"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	oooerrors "github.com/alexisbeaulieu97/ooo/pkg/errors"
)

// ErrNothingToCopy is returned when the text to copy is blank.
var ErrNothingToCopy = errors.New("nothing to copy: generate a message first")

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// Multiplexer identifies a terminal multiplexer that needs OSC 52 passthrough.
type Multiplexer int

const (
	MuxNone Multiplexer = iota
	MuxTmux
	MuxScreen
)

// DetectMultiplexer inspects the environment through getenv.
func DetectMultiplexer(getenv func(string) string) Multiplexer {
	if getenv == nil {
		return MuxNone
	}
	if getenv("TMUX") != "" {
		return MuxTmux
	}
	if getenv("STY") != "" {
		return MuxScreen
	}
	return MuxNone
}

// Write copies text with c after rejecting blank input.
func Write(c Copier, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNothingToCopy
	}
	if c == nil {
		return oooerrors.NewClipboardError("", errors.New("no clipboard configured"))
	}
	return c.Copy(text)
}

// System uses the platform clipboard utilities (pbcopy, xclip, xsel,
// wl-copy or the Windows API).
type System struct{}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return oooerrors.NewClipboardError("system", errors.New("no clipboard utilities available"))
	}
	if err := clipboard.WriteAll(text); err != nil {
		return oooerrors.NewClipboardError("system", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set its clipboard by writing an
// OSC 52 escape sequence to Out. Works over SSH when the terminal allows it.
type OSC52 struct {
	Out io.Writer
	Mux Multiplexer
}

func (o OSC52) Copy(text string) error {
	if o.Out == nil {
		return oooerrors.NewClipboardError("osc52", errors.New("no terminal output"))
	}

	seq := osc52.New(text)
	switch o.Mux {
	case MuxTmux:
		seq = seq.Tmux()
	case MuxScreen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.Out); err != nil {
		return oooerrors.NewClipboardError("osc52", err)
	}
	return nil
}

// Chain tries each Copier in order and stops at the first success.
type Chain []Copier

func (c Chain) Copy(text string) error {
	var errs []error
	for _, copier := range c {
		err := copier.Copy(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return oooerrors.NewClipboardError("", errors.New("no clipboard backends"))
	}
	return errors.Join(errs...)
}

// Default returns the system clipboard with an OSC 52 fallback on out.
func Default(out io.Writer, getenv func(string) string) Copier {
	return Chain{
		System{},
		OSC52{Out: out, Mux: DetectMultiplexer(getenv)},
	}
}
