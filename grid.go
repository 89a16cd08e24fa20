package vtengine

// Grid is a fixed-size 2-D array of attributed cells, plus the cursor and
// current-write attribute that the Sequence Interpreter mutates. Grid
// implements Handler directly: it is both the screen-state machine and the
// target of the escape parser's dispatch, combining cursor, attribute, and
// cell storage behind one receiver instead of splitting them across types.
type Grid struct {
	cols, rows int
	buf        [][]Cell
	cursor     Cursor
	current    CharAttr
	dirty      []bool // bitset, size rows
	logger     logFunc
}

var _ Handler = (*Grid)(nil)

// NewGrid creates a grid of the given size, all cells default, cursor at
// (0,0), current attribute default white-on-black.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{logger: noopLog}
	g.alloc(cols, rows)
	return g
}

func (g *Grid) alloc(cols, rows int) {
	g.cols, g.rows = cols, rows
	g.buf = make([][]Cell, rows)
	for r := range g.buf {
		g.buf[r] = make([]Cell, cols)
		for c := range g.buf[r] {
			g.buf[r][c] = NewCell()
		}
	}
	g.cursor = Cursor{}
	g.current = DefaultAttr
	g.dirty = make([]bool, rows)
}

// Cols and Rows report the current dimensions.
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Cursor returns the current cursor position.
func (g *Grid) Cursor() Cursor { return g.cursor }

// Cell returns the cell at (row, col). Out-of-range coordinates return the
// zero Cell; callers in this package never pass them, but it keeps the
// method total for external use via Engine.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}
	}
	return g.buf[row][col]
}

// markDirty records that row has changed since the last drain.
func (g *Grid) markDirty(row int) {
	if row >= 0 && row < g.rows {
		g.dirty[row] = true
	}
}

func (g *Grid) markAllDirty() {
	for r := range g.dirty {
		g.dirty[r] = true
	}
}

// drainDirty returns the rows marked dirty since the last drain and clears
// the bitset, so duplicates never occur and callers can treat the result
// as a set of row indices.
func (g *Grid) drainDirty() []int {
	var rows []int
	for r, d := range g.dirty {
		if d {
			rows = append(rows, r)
			g.dirty[r] = false
		}
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Resize reallocates the buffer preserving the overlapping region, clamps
// the cursor, and marks every row of the new grid dirty. Non-positive
// dimensions are a caller error; the grid is left unchanged and a warning
// is logged.
func (g *Grid) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		g.logger("vtengine: Resize(%d, %d) ignored: dimensions must be >= 1", cols, rows)
		return
	}

	next := make([][]Cell, rows)
	for r := range next {
		next[r] = make([]Cell, cols)
		for c := range next[r] {
			next[r][c] = NewCell()
		}
	}

	overlapRows := min(g.rows, rows)
	overlapCols := min(g.cols, cols)
	for r := 0; r < overlapRows; r++ {
		for c := 0; c < overlapCols; c++ {
			next[r][c] = g.buf[r][c]
		}
	}

	g.buf = next
	g.cols, g.rows = cols, rows
	g.dirty = make([]bool, rows)
	g.cursor.Row = clamp(g.cursor.Row, 0, rows-1)
	g.cursor.Col = clamp(g.cursor.Col, 0, cols-1)
	g.markAllDirty()
}

// --- scrolling ---

// scrollUp shifts rows 1..rows-1 into 0..rows-2 and fills the new last row
// with default-attribute blanks rather than the current write attribute,
// so a colored background set just before a scroll doesn't bleed into the
// freshly exposed row. Every row is marked dirty.
func (g *Grid) scrollUp() {
	for r := 1; r < g.rows; r++ {
		g.buf[r-1] = g.buf[r]
	}
	g.buf[g.rows-1] = newBlankRow(g.cols, DefaultAttr)
	g.markAllDirty()
}

// scrollDown shifts rows 0..rows-2 into 1..rows-1 and fills row 0 with
// default-attribute blanks. Used by RI (ESC M) when the cursor is already
// on row 0.
func (g *Grid) scrollDown() {
	for r := g.rows - 1; r > 0; r-- {
		g.buf[r] = g.buf[r-1]
	}
	g.buf[0] = newBlankRow(g.cols, DefaultAttr)
	g.markAllDirty()
}

func newBlankRow(cols int, attr CharAttr) []Cell {
	row := make([]Cell, cols)
	for c := range row {
		row[c] = NewCellWithAttr(attr)
	}
	return row
}

// --- Handler implementation ---

// C0 implements Handler for the recognized C0 control codes; any other
// control byte is silently ignored rather than treated as an error.
func (g *Grid) C0(b byte) {
	switch b {
	case 0x07: // BEL
		// no-op: bell is a host/renderer concern, not a grid mutation
	case 0x08: // BS
		g.cursor.Col = clamp(g.cursor.Col-1, 0, g.cols)
	case 0x09: // HT: next multiple of 8, clamped to cols-1
		next := (g.cursor.Col/8 + 1) * 8
		g.cursor.Col = clamp(next, 0, g.cols-1)
	case 0x0A: // LF
		g.lineFeed()
	case 0x0D: // CR
		g.cursor.Col = 0
	}
}

// lineFeed advances one row, scrolling if already on the last row.
func (g *Grid) lineFeed() {
	if g.cursor.Row == g.rows-1 {
		g.scrollUp()
		return
	}
	g.cursor.Row++
}

// Print implements Handler: writes one scalar at the cursor, wrapping
// first if the column had reached cols from a previous write.
func (g *Grid) Print(r rune) {
	if g.cursor.Col == g.cols {
		g.cursor.Col = 0
		g.lineFeed()
	}
	g.buf[g.cursor.Row][g.cursor.Col] = Cell{Ch: r, Attr: g.current}
	g.cursor.Col++
	g.markDirty(g.cursor.Row)
}

// EscFinal implements Handler for the four non-CSI escapes the required
// repertoire names; other final bytes are ignored.
func (g *Grid) EscFinal(b byte) {
	switch b {
	case 'c': // RIS: full reset
		g.fullReset()
	case 'D': // IND
		g.lineFeed()
	case 'M': // RI
		if g.cursor.Row == 0 {
			g.scrollDown()
		} else {
			g.cursor.Row--
		}
	case 'E': // NEL
		g.cursor.Col = 0
		g.lineFeed()
	default:
		g.logger("vtengine: ignoring unrecognized ESC final 0x%02x", b)
	}
}

func (g *Grid) fullReset() {
	g.current = DefaultAttr
	g.cursor = Cursor{}
	for r := range g.buf {
		for c := range g.buf[r] {
			g.buf[r][c] = NewCell()
		}
	}
	g.markAllDirty()
}

// CSI implements Handler for the required CSI repertoire: CUU/CUD/CUF/CUB,
// CUP/HVP, ED, EL, SGR. Unrecognized finals are ignored.
func (g *Grid) CSI(params []int, private bool, final byte) {
	p1 := param(params, 0, 1)

	switch final {
	case 'A': // CUU
		g.cursor.Row = clamp(g.cursor.Row-max1(p1), 0, g.rows-1)
	case 'B': // CUD
		g.cursor.Row = clamp(g.cursor.Row+max1(p1), 0, g.rows-1)
	case 'C': // CUF
		g.cursor.Col = clamp(g.cursor.Col+max1(p1), 0, g.cols-1)
	case 'D': // CUB
		g.cursor.Col = clamp(g.cursor.Col-max1(p1), 0, g.cols-1)
	case 'H', 'f': // CUP / HVP
		row := paramOr1(params, 0)
		col := paramOr1(params, 1)
		g.cursor.Row = clamp(row-1, 0, g.rows-1)
		g.cursor.Col = clamp(col-1, 0, g.cols-1)
	case 'J': // ED
		g.eraseDisplay(param(params, 0, 0))
	case 'K': // EL
		g.eraseLine(param(params, 0, 0))
	case 'm': // SGR
		g.sgr(params)
	default:
		g.logger("vtengine: ignoring unrecognized CSI final 0x%02x (private=%v)", final, private)
	}
}

// param returns params[i] if present, else def.
func param(params []int, i, def int) int {
	if i < len(params) {
		return params[i]
	}
	return def
}

// paramOr1 returns params[i] if present and nonzero, else 1. CUP/HVP treat
// a missing or explicit-zero coordinate as 1, per xterm convention.
func paramOr1(params []int, i int) int {
	if i < len(params) && params[i] != 0 {
		return params[i]
	}
	return 1
}

// max1 treats a missing or zero motion count as 1, the usual CUU/CUD/CUF/CUB
// default for an absent parameter.
func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (g *Grid) eraseDisplay(mode int) {
	switch mode {
	case 0: // cursor to end of screen
		g.clearRowRange(g.cursor.Row, g.cursor.Col, g.cols-1)
		for r := g.cursor.Row + 1; r < g.rows; r++ {
			g.clearRowRange(r, 0, g.cols-1)
		}
	case 1: // start to cursor, inclusive
		for r := 0; r < g.cursor.Row; r++ {
			g.clearRowRange(r, 0, g.cols-1)
		}
		g.clearRowRange(g.cursor.Row, 0, g.cursor.Col)
	case 2: // whole screen, cursor moves to (0,0)
		for r := 0; r < g.rows; r++ {
			g.clearRowRange(r, 0, g.cols-1)
		}
		g.cursor = Cursor{}
	default:
		g.logger("vtengine: ignoring unknown ED parameter %d", mode)
	}
}

func (g *Grid) eraseLine(mode int) {
	switch mode {
	case 0:
		g.clearRowRange(g.cursor.Row, g.cursor.Col, g.cols-1)
	case 1:
		g.clearRowRange(g.cursor.Row, 0, g.cursor.Col)
	case 2:
		g.clearRowRange(g.cursor.Row, 0, g.cols-1)
	default:
		g.logger("vtengine: ignoring unknown EL parameter %d", mode)
	}
}

// clearRowRange fills [from, to] (inclusive) of row with default blanks and
// marks the row dirty. Out-of-range bounds are clamped rather than
// rejected, since callers above already derive them from clamped cursor
// coordinates.
func (g *Grid) clearRowRange(row, from, to int) {
	if row < 0 || row >= g.rows {
		return
	}
	from = clamp(from, 0, g.cols-1)
	to = clamp(to, 0, g.cols-1)
	for c := from; c <= to; c++ {
		g.buf[row][c] = NewCell()
	}
	g.markDirty(row)
}

// sgr applies SGR parameters in order to the current attribute. An empty
// parameter list behaves as a single 0 (reset).
func (g *Grid) sgr(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	for _, p := range params {
		switch {
		case p == 0:
			g.current = DefaultAttr
		case p >= 30 && p <= 37:
			g.current.FG = AnsiColor(p - 30)
		case p == 39:
			g.current.FG = DefaultForeground
		case p >= 40 && p <= 47:
			g.current.BG = AnsiColor(p - 40)
		case p == 49:
			g.current.BG = DefaultBackground
		default:
			g.logger("vtengine: ignoring unsupported SGR parameter %d", p)
		}
	}
}
