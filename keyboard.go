package vtengine

// KeyCode names a logical key, independent of how the host captured it.
type KeyCode int

const (
	KeyCharacter KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyInput is a logical key event as captured by the host (keyboard
// capture itself is out of scope for this package, see package doc).
type KeyInput struct {
	Code     KeyCode
	Char     rune
	ModShift bool
	ModCtrl  bool
}

// shiftedSymbol maps an unshifted US-QWERTY digit/punctuation rune to its
// shifted form.
var shiftedSymbol = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', ',': '<', '.': '>', '/': '?', '`': '~',
}

// namedKeyBytes maps the non-Character key codes to their outbound bytes.
var namedKeyBytes = map[KeyCode]string{
	KeyEnter:     "\r",
	KeyBackspace: "\x7f",
	KeyTab:       "\t",
	KeyEscape:    "\x1b",
	KeyUp:        "\x1b[A",
	KeyDown:      "\x1b[B",
	KeyRight:     "\x1b[C",
	KeyLeft:      "\x1b[D",
	KeyHome:      "\x1b[H",
	KeyEnd:       "\x1b[F",
	KeyInsert:    "\x1b[2~",
	KeyDelete:    "\x1b[3~",
	KeyPageUp:    "\x1b[5~",
	KeyPageDown:  "\x1b[6~",
	KeyF1:        "\x1bOP",
	KeyF2:        "\x1bOQ",
	KeyF3:        "\x1bOR",
	KeyF4:        "\x1bOS",
	KeyF5:        "\x1b[15~",
	KeyF6:        "\x1b[17~",
	KeyF7:        "\x1b[18~",
	KeyF8:        "\x1b[19~",
	KeyF9:        "\x1b[20~",
	KeyF10:       "\x1b[21~",
	KeyF11:       "\x1b[23~",
	KeyF12:       "\x1b[24~",
}

// EncodeKey translates a logical key event into the byte sequence xterm
// would write to the PTY master. Unknown combinations return nil.
func EncodeKey(k KeyInput) []byte {
	if k.Code != KeyCharacter {
		if s, ok := namedKeyBytes[k.Code]; ok {
			return []byte(s)
		}
		return nil
	}

	if k.ModCtrl {
		if isAsciiLetter(k.Char) {
			return []byte{byte(toUpperAscii(k.Char)) & 0x1F}
		}
		return nil
	}

	if k.ModShift {
		if isLowerAsciiLetter(k.Char) {
			return []byte(string(toUpperAscii(k.Char)))
		}
		if shifted, ok := shiftedSymbol[k.Char]; ok {
			return []byte(string(shifted))
		}
		return nil
	}

	return []byte(string(k.Char))
}

func isAsciiLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isLowerAsciiLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func toUpperAscii(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
