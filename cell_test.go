package vtengine

import "testing"

func TestNewCell(t *testing.T) {
	c := NewCell()

	if c.Ch != ' ' {
		t.Errorf("Ch = %q, want space", c.Ch)
	}
	if c.Attr != DefaultAttr {
		t.Errorf("Attr = %+v, want default", c.Attr)
	}
}

func TestNewCellWithAttr(t *testing.T) {
	attr := CharAttr{FG: AnsiColor(1), BG: AnsiColor(4)}
	c := NewCellWithAttr(attr)

	if c.Ch != ' ' {
		t.Errorf("Ch = %q, want space", c.Ch)
	}
	if c.Attr != attr {
		t.Errorf("Attr = %+v, want %+v", c.Attr, attr)
	}
}
