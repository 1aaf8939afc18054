// Package sprites extracts decoded bitmap frames from a sprite archive.
//
// The archive is a read-only tree of PNG frames addressed by
// locator.SpriteKey. Frames come in a closed set of source encodings:
// palette-indexed and direct RGBA. Palette-indexed frames resolve every
// index through the palette with explicit bounds checks; a designated
// transparent entry produces an a=0 pixel with RGB zeroed.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"

	"badc0de.net/pkg/pokeprint/locator"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DecodeError reports a structurally bad archive entry.
type DecodeError struct {
	Key   locator.SpriteKey
	Fault string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("could not decode sprite %q: %s", string(e.Key), e.Fault)
}

// Archive is a read-only collection of sprite frames.
type Archive struct {
	fsys fs.FS
}

// NewArchive wraps a filesystem holding the sprite tree
// (regular/..., shiny/..., with optional female/ subdirectories).
func NewArchive(fsys fs.FS) *Archive {
	return &Archive{fsys: fsys}
}

// Extract decodes the frame stored under key into a Bitmap.
func (a *Archive) Extract(key locator.SpriteKey) (*Bitmap, error) {
	f, err := a.fsys.Open(string(key))
	if err != nil {
		return nil, errors.Wrapf(err, "could not open sprite %q", string(key))
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, DecodeError{Key: key, Fault: err.Error()}
	}
	glog.V(1).Infof("sprites.Extract(%q): %dx%d", string(key), img.Bounds().Dx(), img.Bounds().Dy())
	return frameFromImage(key, img)
}

// FromImage converts an already decoded image into a Bitmap using the
// same closed-variant conversion Extract applies. The name only labels
// errors.
func FromImage(name string, img image.Image) (*Bitmap, error) {
	return frameFromImage(locator.SpriteKey(name), img)
}

func frameFromImage(key locator.SpriteKey, img image.Image) (*Bitmap, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, DecodeError{Key: key, Fault: fmt.Sprintf("zero dimension (%dx%d)", b.Dx(), b.Dy())}
	}
	switch src := img.(type) {
	case *image.Paletted:
		return frameFromPaletted(key, src)
	default:
		return frameFromDirect(src), nil
	}
}

func frameFromPaletted(key locator.SpriteKey, src *image.Paletted) (*Bitmap, error) {
	pal := make([]Pixel, len(src.Palette))
	for i, c := range src.Palette {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		if nc.A == 0 {
			// Transparent entry: drop the RGB too.
			continue
		}
		pal[i] = Pixel{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
	}

	b := src.Bounds()
	bm := &Bitmap{W: b.Dx(), H: b.Dy(), Pix: make([]Pixel, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			idx := src.ColorIndexAt(x, y)
			if int(idx) >= len(pal) {
				return nil, DecodeError{
					Key:   key,
					Fault: fmt.Sprintf("palette index %d out of range (palette has %d colors)", idx, len(pal)),
				}
			}
			bm.Pix[i] = pal[idx]
			i++
		}
	}
	return bm, nil
}

func frameFromDirect(src image.Image) *Bitmap {
	b := src.Bounds()
	bm := &Bitmap{W: b.Dx(), H: b.Dy(), Pix: make([]Pixel, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			nc := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if nc.A != 0 {
				bm.Pix[i] = Pixel{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
			}
			i++
		}
	}
	return bm
}
