package halfblock

import (
	"fmt"
	"strings"
)

const sgrReset = "\x1b[0m"

// Mode selects how cell colors map to escape sequences.
type Mode int

const (
	// ModeTrueColor emits 24-bit SGR sequences.
	ModeTrueColor Mode = iota
	// ModeANSI256 approximates colors in the xterm 256-color palette.
	ModeANSI256
	// ModeOff emits bare glyphs without any escape sequence.
	ModeOff
)

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "truecolor":
		return ModeTrueColor, nil
	case "ansi256":
		return ModeANSI256, nil
	case "off":
		return ModeOff, nil
	}
	return 0, fmt.Errorf("unknown color mode %q (want truecolor, ansi256 or off)", s)
}

// Encoder serializes rendered lines into terminal output.
type Encoder struct {
	Mode Mode
}

// Encode serializes all lines, one terminal row each,
// newline-terminated. Any color state is reset before each newline, so
// nothing bleeds into surrounding terminal content.
func (e Encoder) Encode(lines []Line) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(e.EncodeLine(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// EncodeLine serializes one line. Consecutive cells with identical
// color state reuse the active SGR sequence; blank cells emit a plain
// space (dropping any active color first, since a styled space would
// paint the lower half). A line that set any color ends with a reset.
func (e Encoder) EncodeLine(line Line) string {
	var sb strings.Builder
	var curFG, curBG *Color
	styled := false
	for _, c := range line {
		if c.Glyph == Blank {
			if curFG != nil || curBG != nil {
				sb.WriteString(sgrReset)
				curFG, curBG = nil, nil
			}
			sb.WriteByte(' ')
			continue
		}
		if e.Mode == ModeOff {
			sb.WriteRune(c.Glyph.Rune())
			continue
		}
		if !colorEq(curFG, c.FG) || !colorEq(curBG, c.BG) {
			e.writeSGR(&sb, c)
			curFG, curBG = c.FG, c.BG
			styled = true
		}
		sb.WriteRune(c.Glyph.Rune())
	}
	if styled && (curFG != nil || curBG != nil) {
		sb.WriteString(sgrReset)
	}
	return sb.String()
}

// writeSGR emits one combined sequence that first resets, then sets the
// cell's foreground and background. Starting from the reset state means
// a cell without background correctly inherits the terminal default.
func (e Encoder) writeSGR(sb *strings.Builder, c Cell) {
	sb.WriteString("\x1b[0")
	if c.FG != nil {
		if e.Mode == ModeANSI256 {
			fmt.Fprintf(sb, ";38;5;%d", xterm256(*c.FG))
		} else {
			fmt.Fprintf(sb, ";38;2;%d;%d;%d", c.FG.R, c.FG.G, c.FG.B)
		}
	}
	if c.BG != nil {
		if e.Mode == ModeANSI256 {
			fmt.Fprintf(sb, ";48;5;%d", xterm256(*c.BG))
		} else {
			fmt.Fprintf(sb, ";48;2;%d;%d;%d", c.BG.R, c.BG.G, c.BG.B)
		}
	}
	sb.WriteByte('m')
}

func colorEq(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// xterm256 maps a color to the nearest entry of the xterm 6x6x6 color
// cube, or the grayscale ramp when all channels are equal.
func xterm256(c Color) uint8 {
	if c.R == c.G && c.G == c.B {
		return gray256(c.R)
	}
	return uint8(16 + 36*cubeIndex(c.R) + 6*cubeIndex(c.G) + cubeIndex(c.B))
}

// gray256 picks the nearest of the grayscale ramp values 8, 18, ...,
// 238 (entries 232-255), or the cube's black and white corners past the
// ramp's ends.
func gray256(v uint8) uint8 {
	if v < 5 {
		return 16
	}
	if v > 246 {
		return 231
	}
	idx := (int(v) - 3) / 10
	if idx > 23 {
		idx = 23
	}
	return uint8(232 + idx)
}

// cubeIndex picks the nearest of the cube levels 0, 95, 135, 175, 215,
// 255 for one channel.
func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (int(v) - 35) / 40
}
