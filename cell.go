package vtengine

// Cell is one grid position: a character and the attribute it was written
// with. The zero value is not a valid cell; use NewCell or NewCellWithAttr.
type Cell struct {
	Ch   rune
	Attr CharAttr
}

// NewCell returns a space cell with the default attribute.
func NewCell() Cell {
	return Cell{Ch: ' ', Attr: DefaultAttr}
}

// NewCellWithAttr returns a space cell with the given attribute. The grid
// uses it to build blank rows scrolled in, always with DefaultAttr.
func NewCellWithAttr(attr CharAttr) Cell {
	return Cell{Ch: ' ', Attr: attr}
}
