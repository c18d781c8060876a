package clipboard

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// System writes to the operating system clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever atotto/clipboard finds).
type System struct{}

// WriteText implements Writer. The underlying helper process cannot be
// cancelled, but the caller stops waiting when ctx is done.
func (System) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	done := make(chan error, 1)
	go func() { done <- clipboard.WriteAll(text) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("system clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OSC52 asks the terminal emulator to set its clipboard with the OSC 52
// escape sequence. It works over SSH and inside tmux where no local
// clipboard helper exists.
type OSC52 struct {
	// TTY is the terminal device, /dev/tty when empty.
	TTY string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Open defaults to opening TTY write-only; tests replace it.
	Open func(path string) (io.WriteCloser, error)
}

// CopySelection implements SelectionCopier. The terminal device is the
// temporary holder: it is opened, receives the encoded selection and is
// closed again.
func (o OSC52) CopySelection(text string) error {
	path := o.TTY
	if path == "" {
		path = "/dev/tty"
	}
	open := o.Open
	if open == nil {
		open = openTTY
	}
	getenv := o.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	w, err := open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer w.Close()

	if _, err := io.WriteString(w, Sequence(text, inTmux(getenv))); err != nil {
		return fmt.Errorf("writing OSC 52: %w", err)
	}
	return nil
}

func openTTY(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	if !term.IsTerminal(int(f.Fd())) {
		f.Close()
		return nil, ErrUnavailable
	}
	return f, nil
}

func inTmux(getenv func(string) string) bool {
	t := getenv("TERM")
	return getenv("TMUX") != "" || strings.HasPrefix(t, "tmux") || strings.HasPrefix(t, "screen")
}

// Sequence returns the bytes that set the terminal clipboard to text. BEL
// terminates the OSC because it survives SSH and multiplexers intact.
// Inside tmux the sequence is sent both wrapped in DCS passthrough and
// directly, covering either tmux clipboard mode.
func Sequence(text string, tmux bool) string {
	osc := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
	if !tmux {
		return osc
	}
	return "\x1bPtmux;\x1b" + osc + "\x1b\\" + osc
}
