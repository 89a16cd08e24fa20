package vtengine

import "log/slog"

// DefaultCols and DefaultRows are the conventional VT220 screen dimensions,
// used when New is called with non-positive dimensions.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Engine is the terminal logic engine: PTY bytes in via ProcessInput, key
// events in via ProcessKey, a cell grid and cursor observable at any time
// in between. It is single-threaded and non-reentrant — see package doc.
type Engine struct {
	grid   *Grid
	parser *Parser
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger routes the engine's internal diagnostics (invalid UTF-8,
// unrecognized sequences, rejected Resize calls) through l at Debug/Warn
// level. Without this option diagnostics are discarded, so unit tests and
// library embedding never need a logging subsystem configured.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		debug := slogAdapter(l, slog.LevelDebug)
		warn := slogAdapter(l, slog.LevelWarn)
		e.grid.logger = warn
		e.parser.logger = debug
	}
}

// New constructs an engine with a cols x rows grid, default attribute
// white-on-black, cursor at (0,0). Non-positive dimensions are replaced
// with the 80x24 default.
func New(cols, rows int, opts ...Option) *Engine {
	if cols < 1 {
		cols = DefaultCols
	}
	if rows < 1 {
		rows = DefaultRows
	}

	grid := NewGrid(cols, rows)
	e := &Engine{grid: grid, parser: NewParser(grid)}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ProcessInput consumes PTY output bytes, updating the grid, and returns
// the row indices that changed as a result (order arbitrary, no
// duplicates since the tracker is a bitset; still treat it as a set).
// Rows marked dirty by a prior Resize are included, drained here.
func (e *Engine) ProcessInput(data []byte) []int {
	e.parser.FeedAll(data)
	return e.grid.drainDirty()
}

// ProcessKey translates a key event into the bytes to write to the PTY
// master. It does not touch the grid.
func (e *Engine) ProcessKey(k KeyInput) []byte {
	return EncodeKey(k)
}

// Resize reallocates the grid, preserving the overlapping region and
// clamping the cursor. The affected rows surface on the next
// ProcessInput call. Non-positive dimensions are ignored.
func (e *Engine) Resize(cols, rows int) {
	e.grid.Resize(cols, rows)
}

// Cols and Rows report the current grid dimensions.
func (e *Engine) Cols() int { return e.grid.Cols() }
func (e *Engine) Rows() int { return e.grid.Rows() }

// Cell returns the cell at (row, col), or the zero Cell if out of range.
func (e *Engine) Cell(row, col int) Cell {
	return e.grid.Cell(row, col)
}

// TextBuffer returns a read-only snapshot of the full rows x cols grid.
func (e *Engine) TextBuffer() [][]Cell {
	buf := make([][]Cell, e.grid.Rows())
	for r := range buf {
		row := make([]Cell, e.grid.Cols())
		copy(row, e.grid.buf[r])
		buf[r] = row
	}
	return buf
}

// Cursor returns the current cursor position.
func (e *Engine) Cursor() Cursor {
	return e.grid.Cursor()
}
