package sprites

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"badc0de.net/pkg/pokeprint/locator"
	"badc0de.net/pkg/pokeprint/ttesting"
)

func TestFromImagePaletted(t *testing.T) {
	pal := color.Palette{
		color.NRGBA{A: 0},                      // transparent
		color.NRGBA{R: 255, A: 255},            // red
		color.NRGBA{R: 10, G: 20, B: 30, A: 0}, // transparent with stale RGB
	}
	src := image.NewPaletted(image.Rect(0, 0, 3, 1), pal)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)
	src.SetColorIndex(2, 0, 2)

	bm, err := FromImage("test", src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	ttesting.AssertEqualInt(t, "w", bm.W, 3)
	ttesting.AssertEqualInt(t, "h", bm.H, 1)

	if got := bm.At(0, 0); got != (Pixel{}) {
		t.Errorf("transparent entry: got %+v, want zero pixel", got)
	}
	if got := bm.At(1, 0); got != (Pixel{R: 255, A: 255}) {
		t.Errorf("red entry: got %+v", got)
	}
	// A transparent palette entry must not leak its RGB.
	if got := bm.At(2, 0); got != (Pixel{}) {
		t.Errorf("stale-RGB transparent entry: got %+v, want zero pixel", got)
	}
}

func TestFromImagePaletteIndexOutOfRange(t *testing.T) {
	pal := color.Palette{color.NRGBA{A: 255}, color.NRGBA{R: 255, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 1, 1), pal)
	src.Pix[0] = 5 // not a valid index for a 2-color palette

	_, err := FromImage("test", src)
	if err == nil {
		t.Fatalf("out-of-range palette index: got nil error")
	}
	if _, ok := err.(DecodeError); !ok {
		t.Errorf("out-of-range palette index: got %T, want DecodeError", err)
	}
}

func TestFromImageZeroDimension(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 0, 5))
	if _, err := FromImage("test", src); err == nil {
		t.Errorf("zero width: got nil error, want DecodeError")
	}
}

func TestFromImageDirect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 9, G: 9, B: 9, A: 0})

	bm, err := FromImage("test", src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if got := bm.At(0, 0); got != (Pixel{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("opaque pixel: got %+v", got)
	}
	if got := bm.At(1, 0); got != (Pixel{}) {
		t.Errorf("transparent pixel kept stale RGB: got %+v", got)
	}
}

func testArchive(t *testing.T) *Archive {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 255})

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	return NewArchive(fstest.MapFS{
		"regular/pikachu.png": &fstest.MapFile{Data: buf.Bytes()},
		"regular/garbage.png": &fstest.MapFile{Data: []byte("not a png")},
	})
}

func TestExtract(t *testing.T) {
	a := testArchive(t)
	bm, err := a.Extract(locator.SpriteKey("regular/pikachu.png"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	ttesting.AssertEqualInt(t, "w", bm.W, 2)
	ttesting.AssertEqualInt(t, "h", bm.H, 2)
	if got := bm.At(1, 1); got != (Pixel{R: 255, G: 255, A: 255}) {
		t.Errorf("pixel (1,1): got %+v", got)
	}
}

func TestExtractMissing(t *testing.T) {
	a := testArchive(t)
	if _, err := a.Extract(locator.SpriteKey("shiny/pikachu.png")); err == nil {
		t.Errorf("Extract of a missing key: got nil error")
	}
}

func TestExtractCorrupt(t *testing.T) {
	a := testArchive(t)
	_, err := a.Extract(locator.SpriteKey("regular/garbage.png"))
	if err == nil {
		t.Fatalf("Extract of garbage: got nil error")
	}
	if _, ok := err.(DecodeError); !ok {
		t.Errorf("Extract of garbage: got %T, want DecodeError", err)
	}
}

func TestFrameCache(t *testing.T) {
	c := NewFrameCache(testArchive(t))

	first, err := c.Extract(locator.SpriteKey("regular/pikachu.png"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	second, err := c.Extract(locator.SpriteKey("regular/pikachu.png"))
	if err != nil {
		t.Fatalf("Extract (cached): %v", err)
	}
	if first != second {
		t.Errorf("cache returned a different bitmap on the second extract")
	}
	if _, err := c.Extract(locator.SpriteKey("regular/garbage.png")); err == nil {
		t.Errorf("cached Extract of garbage: got nil error")
	}
}

func TestTrim(t *testing.T) {
	// 4x4 with a 2x1 opaque island at (1,2)-(2,2).
	bm := &Bitmap{W: 4, H: 4, Pix: make([]Pixel, 16)}
	bm.Pix[2*4+1] = Pixel{R: 1, A: 255}
	bm.Pix[2*4+2] = Pixel{R: 2, A: 255}

	out := Trim(bm)
	ttesting.AssertEqualInt(t, "w", out.W, 2)
	ttesting.AssertEqualInt(t, "h", out.H, 1)
	if got := out.At(0, 0); got != (Pixel{R: 1, A: 255}) {
		t.Errorf("trimmed (0,0): got %+v", got)
	}
	if got := out.At(1, 0); got != (Pixel{R: 2, A: 255}) {
		t.Errorf("trimmed (1,0): got %+v", got)
	}
}

func TestTrimAllTransparent(t *testing.T) {
	bm := &Bitmap{W: 3, H: 3, Pix: make([]Pixel, 9)}
	out := Trim(bm)
	if out != bm {
		t.Errorf("all-transparent bitmap should come back unchanged")
	}
}

func TestTrimNoBorder(t *testing.T) {
	bm := &Bitmap{W: 1, H: 1, Pix: []Pixel{{R: 1, A: 255}}}
	if out := Trim(bm); out != bm {
		t.Errorf("bitmap without transparent border should come back unchanged")
	}
}
