package sprites

// Trim returns a bitmap with fully transparent border rows and columns
// removed. An all-transparent bitmap is returned unchanged, as is one
// with no transparent border.
func Trim(b *Bitmap) *Bitmap {
	minX, minY := b.W, b.H
	maxX, maxY := -1, -1
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !b.Pix[y*b.W+x].Opaque() {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return b
	}
	if minX == 0 && minY == 0 && maxX == b.W-1 && maxY == b.H-1 {
		return b
	}

	w, h := maxX-minX+1, maxY-minY+1
	out := &Bitmap{W: w, H: h, Pix: make([]Pixel, w*h)}
	for y := 0; y < h; y++ {
		copy(out.Pix[y*w:(y+1)*w], b.Pix[(minY+y)*b.W+minX:(minY+y)*b.W+minX+w])
	}
	return out
}
