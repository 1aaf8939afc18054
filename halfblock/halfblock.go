// Package halfblock renders decoded sprite frames as terminal text.
//
// Each output cell encodes two vertically adjacent pixels using the
// half-block glyphs: the glyph's foreground paints the top half of the
// cell and its background paints the bottom half. Both source rows stay
// visually distinct; nothing is averaged away, the image only collapses
// 2x vertically.
package halfblock

import (
	"badc0de.net/pkg/pokeprint/sprites"
)

// Glyph selects the character drawn in a cell.
type Glyph int

const (
	Blank Glyph = iota
	Full
	UpperHalf
	LowerHalf
)

// Rune returns the glyph's character.
func (g Glyph) Rune() rune {
	switch g {
	case Full:
		return '█'
	case UpperHalf:
		return '▀'
	case LowerHalf:
		return '▄'
	}
	return ' '
}

// Color is a terminal-representable color.
type Color struct {
	R, G, B uint8
}

// Cell is one terminal cell. For UpperHalf cells FG paints the upper
// half-pixel and BG the lower one; Full and LowerHalf cells use FG
// alone. Nil means the terminal default, i.e. an untouched half.
type Cell struct {
	Glyph  Glyph
	FG, BG *Color
}

// Line is an ordered row of cells.
type Line []Cell

// Render pairs the bitmap's pixel rows two at a time and chooses a
// glyph per column. A bitmap of height H yields ceil(H/2) lines of
// exactly W cells each. For the last line of an odd-height bitmap the
// lower pixel is synthesized as fully transparent rather than read out
// of bounds.
func Render(b *sprites.Bitmap) []Line {
	lines := make([]Line, 0, (b.H+1)/2)
	for y := 0; y < b.H; y += 2 {
		line := make(Line, b.W)
		for x := 0; x < b.W; x++ {
			// At yields a transparent pixel below the last row.
			line[x] = cellFor(b.At(x, y), b.At(x, y+1))
		}
		lines = append(lines, line)
	}
	return lines
}

func cellFor(upper, lower sprites.Pixel) Cell {
	switch {
	case !upper.Opaque() && !lower.Opaque():
		return Cell{Glyph: Blank}
	case upper.Opaque() && lower.Opaque() && upper.SameColor(lower):
		// A pair differing only in alpha still merges into one block.
		return Cell{Glyph: Full, FG: colorOf(upper)}
	case upper.Opaque() && lower.Opaque():
		return Cell{Glyph: UpperHalf, FG: colorOf(upper), BG: colorOf(lower)}
	case upper.Opaque():
		return Cell{Glyph: UpperHalf, FG: colorOf(upper)}
	default:
		return Cell{Glyph: LowerHalf, FG: colorOf(lower)}
	}
}

func colorOf(p sprites.Pixel) *Color {
	return &Color{R: p.R, G: p.G, B: p.B}
}
