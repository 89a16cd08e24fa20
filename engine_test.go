package vtengine

import "testing"

func TestEngineDefaultsOn8024(t *testing.T) {
	e := New(80, 24)
	if e.Cols() != 80 || e.Rows() != 24 {
		t.Fatalf("dims = %dx%d, want 80x24", e.Cols(), e.Rows())
	}
}

func TestEngineNewWithInvalidDimsUsesDefault(t *testing.T) {
	e := New(0, -5)
	if e.Cols() != DefaultCols || e.Rows() != DefaultRows {
		t.Fatalf("dims = %dx%d, want %dx%d defaults", e.Cols(), e.Rows(), DefaultCols, DefaultRows)
	}
}

func TestEngineSgrRedThenPrint(t *testing.T) {
	e := New(80, 24)
	dirty := e.ProcessInput([]byte("\x1B[31mA"))

	cell := e.Cell(0, 0)
	if cell.Ch != 'A' || cell.Attr.FG != AnsiColor(1) || cell.Attr.BG != DefaultBackground {
		t.Fatalf("cell = %+v, want 'A' red-on-black", cell)
	}
	if e.Cursor() != (Cursor{Row: 0, Col: 1}) {
		t.Fatalf("cursor = %+v, want (0,1)", e.Cursor())
	}
	if !containsRow(dirty, 0) {
		t.Fatalf("dirty = %v, want to contain row 0", dirty)
	}
}

func TestEngineWrapOnColumnOverflow(t *testing.T) {
	e := New(80, 24)
	e.grid.cursor = Cursor{Row: 0, Col: 79}

	e.ProcessInput([]byte("AB"))

	if e.Cell(0, 79).Ch != 'A' {
		t.Fatalf("cell(0,79) = %q, want 'A'", e.Cell(0, 79).Ch)
	}
	if e.Cell(1, 0).Ch != 'B' {
		t.Fatalf("cell(1,0) = %q, want 'B'", e.Cell(1, 0).Ch)
	}
	if e.Cursor() != (Cursor{Row: 1, Col: 1}) {
		t.Fatalf("cursor = %+v, want (1,1)", e.Cursor())
	}
}

func TestEngineScrollOnLastRowLF(t *testing.T) {
	e := New(80, 24)
	for c := 0; c < e.Cols(); c++ {
		e.grid.buf[0][c] = Cell{Ch: 'a', Attr: DefaultAttr}
		e.grid.buf[23][c] = Cell{Ch: 'b', Attr: DefaultAttr}
	}
	e.grid.cursor = Cursor{Row: 23, Col: 0}

	dirty := e.ProcessInput([]byte("\n"))

	if e.Cell(22, 0).Ch != 'b' {
		t.Fatalf("row 22 = %q, want 'b'", e.Cell(22, 0).Ch)
	}
	if e.Cell(23, 0).Ch != ' ' {
		t.Fatalf("row 23 = %q, want blank", e.Cell(23, 0).Ch)
	}
	if e.Cursor() != (Cursor{Row: 23, Col: 0}) {
		t.Fatalf("cursor = %+v, want (23,0)", e.Cursor())
	}
	if len(dirty) != e.Rows() {
		t.Fatalf("dirty rows = %d, want all %d rows", len(dirty), e.Rows())
	}
}

func TestEngineEraseDisplayMode2(t *testing.T) {
	e := New(80, 24)
	for r := 0; r < e.Rows(); r++ {
		for c := 0; c < e.Cols(); c++ {
			e.grid.buf[r][c] = Cell{Ch: 'x', Attr: DefaultAttr}
		}
	}
	e.grid.cursor = Cursor{Row: 5, Col: 10}

	e.ProcessInput([]byte("\x1B[2J"))

	for r := 0; r < e.Rows(); r++ {
		for c := 0; c < e.Cols(); c++ {
			if e.Cell(r, c).Ch != ' ' {
				t.Fatalf("cell(%d,%d) not blank after ED 2", r, c)
			}
		}
	}
	if e.Cursor() != (Cursor{}) {
		t.Fatalf("cursor = %+v, want (0,0)", e.Cursor())
	}
}

func TestEngineUtf8AcrossCalls(t *testing.T) {
	e := New(80, 24)

	dirty1 := e.ProcessInput([]byte{0xE2})
	if len(dirty1) != 0 {
		t.Fatalf("dirty after partial utf-8 = %v, want empty", dirty1)
	}

	dirty2 := e.ProcessInput([]byte{0x82, 0xAC})
	if len(dirty2) != 1 || dirty2[0] != 0 {
		t.Fatalf("dirty after completing utf-8 = %v, want [0]", dirty2)
	}
	if e.Cell(0, 0).Ch != 0x20AC {
		t.Fatalf("cell(0,0).Ch = %U, want U+20AC", e.Cell(0, 0).Ch)
	}
	if e.Cursor() != (Cursor{Row: 0, Col: 1}) {
		t.Fatalf("cursor = %+v, want (0,1)", e.Cursor())
	}
}

func TestEngineCtrlAKeystroke(t *testing.T) {
	e := New(80, 24)
	got := e.ProcessKey(KeyInput{Code: KeyCharacter, Char: 'a', ModCtrl: true})
	if string(got) != "\x01" {
		t.Fatalf("ProcessKey(ctrl+a) = %q, want 0x01", got)
	}
}

func TestEngineResizeReportsDirtyOnNextProcessInput(t *testing.T) {
	e := New(10, 5)
	e.Resize(8, 8)

	dirty := e.ProcessInput(nil)
	if len(dirty) != e.Rows() {
		t.Fatalf("dirty rows after resize = %d, want all %d", len(dirty), e.Rows())
	}
}

func TestEngineResizePreservesOverlapAndClampsCursor(t *testing.T) {
	e := New(10, 5)
	e.ProcessInput([]byte("\x1B[3;4HZ")) // writes 'Z' near (2,3) 0-based
	e.grid.cursor = Cursor{Row: 4, Col: 9}

	e.Resize(6, 3)

	if e.Cols() != 6 || e.Rows() != 3 {
		t.Fatalf("dims after resize = %dx%d, want 6x3", e.Cols(), e.Rows())
	}
	if e.Cell(2, 3).Ch != 'Z' {
		t.Fatalf("cell(2,3) = %q, want 'Z' preserved", e.Cell(2, 3).Ch)
	}
	if e.Cursor() != (Cursor{Row: 2, Col: 5}) {
		t.Fatalf("cursor after resize = %+v, want clamped to (2,5)", e.Cursor())
	}
}

func TestEngineTextBufferIsSnapshot(t *testing.T) {
	e := New(4, 2)
	e.ProcessInput([]byte("AB"))

	buf := e.TextBuffer()
	buf[0][0].Ch = 'Z' // mutating the snapshot must not affect the engine

	if e.Cell(0, 0).Ch != 'A' {
		t.Fatalf("engine cell(0,0) = %q after mutating snapshot, want unaffected 'A'", e.Cell(0, 0).Ch)
	}
}

func containsRow(rows []int, row int) bool {
	for _, r := range rows {
		if r == row {
			return true
		}
	}
	return false
}
