package sprites

import "image"

// Pixel is one RGBA pixel. A of zero means fully transparent; the
// extractor zeroes RGB on transparent pixels so color comparisons never
// see stale channel data.
type Pixel struct {
	R, G, B, A uint8
}

// Opaque reports whether the pixel should be drawn. Any nonzero alpha
// counts as opaque for glyph selection.
func (p Pixel) Opaque() bool {
	return p.A > 0
}

// SameColor compares RGB only. Merging two opaque half-pixels into one
// full block intentionally ignores alpha.
func (p Pixel) SameColor(q Pixel) bool {
	return p.R == q.R && p.G == q.G && p.B == q.B
}

// Bitmap is a decoded sprite frame: row-major pixels, top-left origin,
// len(Pix) == W*H. A Bitmap is never mutated after construction; stages
// that change pixel data produce a new one.
type Bitmap struct {
	W, H int
	Pix  []Pixel
}

// At returns the pixel at (x, y). Out-of-bounds reads yield a fully
// transparent pixel.
func (b *Bitmap) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return Pixel{}
	}
	return b.Pix[y*b.W+x]
}

// Image converts the bitmap into an NRGBA image, e.g. for encoding to
// PNG or for handing to raster terminal protocols.
func (b *Bitmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := b.Pix[y*b.W+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = p.A
		}
	}
	return img
}
