package halfblock

import (
	"strings"
	"testing"

	"badc0de.net/pkg/pokeprint/sprites"
	"badc0de.net/pkg/pokeprint/ttesting"
)

func opaque(r, g, b uint8) sprites.Pixel {
	return sprites.Pixel{R: r, G: g, B: b, A: 255}
}

func TestRenderDimensions(t *testing.T) {
	for _, tt := range []struct {
		w, h      int
		wantLines int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 3, 2},
		{5, 8, 4},
		{4, 7, 4},
	} {
		bm := &sprites.Bitmap{W: tt.w, H: tt.h, Pix: make([]sprites.Pixel, tt.w*tt.h)}
		lines := Render(bm)
		ttesting.AssertEqualInt(t, "lines", len(lines), tt.wantLines)
		for i, line := range lines {
			if len(line) != tt.w {
				t.Errorf("%dx%d line %d: got %d cells, want %d", tt.w, tt.h, i, len(line), tt.w)
			}
		}
	}
}

func TestRenderAllTransparent(t *testing.T) {
	bm := &sprites.Bitmap{W: 3, H: 4, Pix: make([]sprites.Pixel, 12)}
	for _, line := range Render(bm) {
		for _, c := range line {
			if c.Glyph != Blank || c.FG != nil || c.BG != nil {
				t.Errorf("transparent bitmap produced cell %+v", c)
			}
		}
	}

	out := Encoder{Mode: ModeTrueColor}.Encode(Render(bm))
	ttesting.AssertEqualString(t, "encoded", out, "   \n   \n")
}

func TestRenderPairing(t *testing.T) {
	// Row 0: red, green. Row 1: blue, yellow.
	bm := &sprites.Bitmap{W: 2, H: 2, Pix: []sprites.Pixel{
		opaque(255, 0, 0), opaque(0, 255, 0),
		opaque(0, 0, 255), opaque(255, 255, 0),
	}}
	lines := Render(bm)
	if len(lines) != 1 || len(lines[0]) != 2 {
		t.Fatalf("got %d lines, want 1 line of 2 cells", len(lines))
	}

	c0, c1 := lines[0][0], lines[0][1]
	if c0.Glyph != UpperHalf || *c0.FG != (Color{R: 255}) || *c0.BG != (Color{B: 255}) {
		t.Errorf("cell 0: got %+v", c0)
	}
	if c1.Glyph != UpperHalf || *c1.FG != (Color{G: 255}) || *c1.BG != (Color{R: 255, G: 255}) {
		t.Errorf("cell 1: got %+v", c1)
	}
}

func TestRenderGlyphChoice(t *testing.T) {
	red := opaque(255, 0, 0)
	blue := opaque(0, 0, 255)
	clear := sprites.Pixel{}

	for _, tt := range []struct {
		upper, lower sprites.Pixel
		want         Glyph
	}{
		{clear, clear, Blank},
		{red, red, Full},
		{red, blue, UpperHalf},
		{red, clear, UpperHalf},
		{clear, blue, LowerHalf},
	} {
		if got := cellFor(tt.upper, tt.lower).Glyph; got != tt.want {
			t.Errorf("cellFor(%+v, %+v) = %v, want %v", tt.upper, tt.lower, got, tt.want)
		}
	}
}

func TestRenderAlphaTieBreak(t *testing.T) {
	// Equal RGB, different nonzero alpha: still one full block.
	a := sprites.Pixel{R: 10, G: 20, B: 30, A: 254}
	b := sprites.Pixel{R: 10, G: 20, B: 30, A: 255}
	if got := cellFor(a, b); got.Glyph != Full {
		t.Errorf("alpha-only difference: got %v, want Full", got.Glyph)
	}
}

func TestRenderOddHeight(t *testing.T) {
	// 1x3 column of red; the synthesized fourth pixel is transparent.
	bm := &sprites.Bitmap{W: 1, H: 3, Pix: []sprites.Pixel{
		opaque(255, 0, 0), opaque(255, 0, 0), opaque(255, 0, 0),
	}}
	lines := Render(bm)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	last := lines[1][0]
	if last.Glyph != UpperHalf {
		t.Errorf("last cell glyph: got %v, want UpperHalf", last.Glyph)
	}
	if last.BG != nil {
		t.Errorf("last cell carries a background from beyond the bitmap: %+v", last.BG)
	}
}

func TestEncodeEndToEnd(t *testing.T) {
	bm := &sprites.Bitmap{W: 2, H: 2, Pix: []sprites.Pixel{
		opaque(255, 0, 0), opaque(0, 255, 0),
		opaque(0, 0, 255), opaque(255, 255, 0),
	}}
	got := Encoder{Mode: ModeTrueColor}.Encode(Render(bm))
	want := "\x1b[0;38;2;255;0;0;48;2;0;0;255m▀\x1b[0;38;2;0;255;0;48;2;255;255;0m▀\x1b[0m\n"
	ttesting.AssertEqualString(t, "2x2", got, want)
}

func TestEncodeSingleTransparentPixel(t *testing.T) {
	bm := &sprites.Bitmap{W: 1, H: 1, Pix: []sprites.Pixel{{}}}
	got := Encoder{Mode: ModeTrueColor}.Encode(Render(bm))
	ttesting.AssertEqualString(t, "1x1 transparent", got, " \n")
}

func TestEncodeElidesRepeatedColor(t *testing.T) {
	red := opaque(255, 0, 0)
	bm := &sprites.Bitmap{W: 3, H: 2, Pix: []sprites.Pixel{
		red, red, red,
		red, red, red,
	}}
	got := Encoder{Mode: ModeTrueColor}.Encode(Render(bm))
	want := "\x1b[0;38;2;255;0;0m███\x1b[0m\n"
	ttesting.AssertEqualString(t, "elided", got, want)
}

func TestEncodeResetsBeforeBlank(t *testing.T) {
	red := opaque(255, 0, 0)
	bm := &sprites.Bitmap{W: 2, H: 2, Pix: []sprites.Pixel{
		red, sprites.Pixel{},
		red, sprites.Pixel{},
	}}
	got := Encoder{Mode: ModeTrueColor}.Encode(Render(bm))
	want := "\x1b[0;38;2;255;0;0m█\x1b[0m \n"
	ttesting.AssertEqualString(t, "reset before blank", got, want)
}

func TestEncodeModeOff(t *testing.T) {
	red := opaque(255, 0, 0)
	blue := opaque(0, 0, 255)
	bm := &sprites.Bitmap{W: 2, H: 2, Pix: []sprites.Pixel{
		red, sprites.Pixel{},
		blue, sprites.Pixel{},
	}}
	got := Encoder{Mode: ModeOff}.Encode(Render(bm))
	ttesting.AssertEqualString(t, "off", got, "▀ \n")
	if strings.Contains(got, "\x1b") {
		t.Errorf("ModeOff emitted an escape sequence: %q", got)
	}
}

func TestEncodeANSI256(t *testing.T) {
	red := opaque(255, 0, 0)
	bm := &sprites.Bitmap{W: 1, H: 2, Pix: []sprites.Pixel{red, red}}
	got := Encoder{Mode: ModeANSI256}.Encode(Render(bm))
	want := "\x1b[0;38;5;196m█\x1b[0m\n"
	ttesting.AssertEqualString(t, "red 256", got, want)
}

func TestXterm256(t *testing.T) {
	for _, tt := range []struct {
		c    Color
		want uint8
	}{
		{Color{255, 0, 0}, 196},
		{Color{0, 255, 0}, 46},
		{Color{0, 0, 255}, 21},
		{Color{0, 0, 0}, 16},
		{Color{255, 255, 255}, 231},
		{Color{128, 128, 128}, 244},
		// Gray 248 sits past the ramp's last value (238) and must land
		// on white, not wrap around the ramp into the low palette.
		{Color{248, 248, 248}, 231},
		{Color{247, 247, 247}, 231},
		// Gray 246 is still closer to ramp value 238 (entry 255).
		{Color{246, 246, 246}, 255},
		// Gray 17 is one off ramp value 18 (entry 233), nine off 8.
		{Color{17, 17, 17}, 233},
		{Color{3, 3, 3}, 16},
	} {
		if got := xterm256(tt.c); got != tt.want {
			t.Errorf("xterm256(%+v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{
		"truecolor": ModeTrueColor,
		"ansi256":   ModeANSI256,
		"off":       ModeOff,
	} {
		got, err := ParseMode(s)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseMode("16bit"); err == nil {
		t.Errorf("ParseMode(16bit): got nil error")
	}
}
