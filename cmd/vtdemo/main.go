// Command vtdemo is a minimal host around vtengine: it spawns a shell behind
// a PTY, puts the controlling terminal into raw mode, feeds PTY output into
// an Engine, and renders the resulting grid with termenv. It exists to
// exercise the engine end-to-end, not as a full terminal emulator — there is
// no scrollback, no resize-on-SIGWINCH beyond the initial size, and key
// translation covers the same repertoire vtengine.EncodeKey supports.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/coriwarner/vtengine"
	"github.com/creack/pty"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	shell   = flag.String("shell", defaultShell(), "Shell to run behind the PTY.")
	cols    = flag.Int("cols", vtengine.DefaultCols, "Initial terminal width.")
	rows    = flag.Int("rows", vtengine.DefaultRows, "Initial terminal height.")
	debug   = flag.Bool("debug", false, "Enable debug-level engine diagnostics on stderr.")
)

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "vtdemo: stdin is not a terminal")
		os.Exit(1)
	}

	eng := vtengine.New(*cols, *rows, vtengine.WithLogger(logger))

	cmd := exec.Command(*shell)
	cmd.Env = append(os.Environ(), "TERM=xterm")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(*rows), Cols: uint16(*cols)})
	if err != nil {
		logger.Error("failed to start pty", "err", err)
		os.Exit(1)
	}
	defer ptmx.Close()

	orig, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		logger.Error("failed to enter raw mode", "err", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), orig)

	profile := termenv.ColorProfile()

	go pumpKeys(os.Stdin, ptmx, eng)
	pumpOutput(ptmx, eng, profile)

	cmd.Wait()
}

// pumpKeys reads raw stdin bytes, reinterprets them as logical key events,
// and writes the bytes EncodeKey produces to the PTY master. This is the
// inverse of what a curses-based host does when it decodes terminfo key
// sequences into named keys before handing them to the engine: here the
// bytes already mostly match what the engine would produce, so the bridge
// is intentionally thin, covering control characters, the common escape
// sequences, and printable runes.
func pumpKeys(in *os.File, ptmx *os.File, eng *vtengine.Engine) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil || n == 0 {
			return
		}
		b := buf[0]

		var key vtengine.KeyInput
		switch {
		case b == 0x7f:
			key = vtengine.KeyInput{Code: vtengine.KeyBackspace}
		case b == '\r' || b == '\n':
			key = vtengine.KeyInput{Code: vtengine.KeyEnter}
		case b == '\t':
			key = vtengine.KeyInput{Code: vtengine.KeyTab}
		case b == 0x1b:
			key = vtengine.KeyInput{Code: vtengine.KeyEscape}
		case b < 0x20:
			key = vtengine.KeyInput{Code: vtengine.KeyCharacter, Char: rune(b + 'a' - 1), ModCtrl: true}
		case b >= 0x80:
			// One byte of a multi-byte UTF-8 rune: forward it unchanged
			// rather than re-encoding it as a rune of its own.
			ptmx.Write([]byte{b})
			continue
		default:
			key = vtengine.KeyInput{Code: vtengine.KeyCharacter, Char: rune(b)}
		}

		if out := eng.ProcessKey(key); out != nil {
			ptmx.Write(out)
		} else {
			ptmx.Write([]byte{b})
		}
	}
}

// pumpOutput reads PTY output, feeds it to the engine, and redraws the full
// grid after every read.
func pumpOutput(ptmx *os.File, eng *vtengine.Engine, profile termenv.Profile) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			eng.ProcessInput(buf[:n])
			render(eng, profile)
		}
		if err != nil {
			return
		}
	}
}

// render redraws the full grid. vtengine reports dirty rows precisely
// enough to redraw incrementally, but this demo favors simplicity over a
// flicker-free renderer.
func render(eng *vtengine.Engine, profile termenv.Profile) {
	termenv.ClearScreen()

	var b []byte
	for _, row := range eng.TextBuffer() {
		for _, cell := range row {
			fg := profile.Color(cell.Attr.FG.Hex())
			bg := profile.Color(cell.Attr.BG.Hex())
			styled := termenv.String(string(cell.Ch)).Foreground(fg).Background(bg)
			b = append(b, styled.String()...)
		}
		b = append(b, '\r', '\n')
	}
	os.Stdout.Write(b)

	cur := eng.Cursor()
	termenv.MoveCursor(cur.Row+1, cur.Col+1)
}
