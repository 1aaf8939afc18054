package main

import (
	"github.com/nfnt/resize"

	"badc0de.net/pkg/pokeprint/sprites"
)

// upscale blows the bitmap up by an integer factor. Nearest neighbor
// keeps the pixel-art edges hard.
func upscale(b *sprites.Bitmap, factor uint) (*sprites.Bitmap, error) {
	img := resize.Resize(uint(b.W)*factor, uint(b.H)*factor, b.Image(), resize.NearestNeighbor)
	return sprites.FromImage("scaled", img)
}
