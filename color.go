package vtengine

import "github.com/lucasb-eyer/go-colorful"

// RGBColor is an 8-bit-per-channel color triple. Equality is per-channel.
type RGBColor struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string, via go-colorful rather than
// hand-rolled hex formatting.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ansiPalette is the 8 base ANSI colors, indexed 0 (black) .. 7 (white).
// Built from go-colorful hex parses rather than literal RGBColor{} tables,
// so a malformed hex string panics during package initialization instead
// of silently producing the wrong cell color.
var ansiPalette = buildAnsiPalette()

func buildAnsiPalette() [8]RGBColor {
	hex := [8]string{
		"#000000", // 0 Black
		"#ff0000", // 1 Red
		"#00ff00", // 2 Green
		"#ffff00", // 3 Yellow
		"#0000ff", // 4 Blue
		"#ff00ff", // 5 Magenta
		"#00ffff", // 6 Cyan
		"#ffffff", // 7 White
	}

	var pal [8]RGBColor
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			// Palette is a compile-time constant; a parse failure here is a
			// programming error, not a runtime condition callers can act on.
			panic("vtengine: invalid palette color " + h + ": " + err.Error())
		}
		pal[i] = RGBColor{
			R: uint8(clampFloat(c.R*255, 0, 255)),
			G: uint8(clampFloat(c.G*255, 0, 255)),
			B: uint8(clampFloat(c.B*255, 0, 255)),
		}
	}
	return pal
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AnsiColor returns the RGB value for ANSI base color index 0-7. Out of
// range indices return default white, same clamping posture as the rest of
// the engine's escape-sequence handling.
func AnsiColor(index int) RGBColor {
	if index < 0 || index > 7 {
		return DefaultForeground
	}
	return ansiPalette[index]
}

// DefaultForeground and DefaultBackground are the engine's reset colors:
// white on black, the VT220 SGR-0 default.
var (
	DefaultForeground = RGBColor{R: 255, G: 255, B: 255}
	DefaultBackground = RGBColor{R: 0, G: 0, B: 0}
)

// CharAttr is the fg/bg pair applied to a cell. Equality is structural.
type CharAttr struct {
	FG RGBColor
	BG RGBColor
}

// DefaultAttr is white-on-black, the attribute newly constructed cells and
// a full reset (ESC c) use.
var DefaultAttr = CharAttr{FG: DefaultForeground, BG: DefaultBackground}

// String renders the attribute as "fg/bg" hex, for %v in test failures and
// debug logging.
func (a CharAttr) String() string {
	return a.FG.Hex() + "/" + a.BG.Hex()
}
