// Package compositor arranges several decoded sprite frames on one
// canvas so they can be rendered in a single pass.
//
// Sprites flow left to right, wrap into a new row when the terminal
// runs out of columns, and sit on the bottom edge of their row. One
// transparent pixel separates neighbors in both directions.
package compositor

import (
	"fmt"
	"image"
	"image/draw"

	"badc0de.net/pkg/pokeprint/sprites"

	"github.com/golang/glog"
)

const (
	spriteSpacing    = 1
	minTerminalWidth = 40
)

// Sprite pairs a decoded frame with its display name.
type Sprite struct {
	Name   string
	Bitmap *sprites.Bitmap
}

// Combine lays the sprites onto a single canvas, wrapping rows at the
// current terminal width.
func Combine(sp []Sprite) (*sprites.Bitmap, error) {
	width := minTerminalWidth
	if ts, err := GetTermSize(); err == nil && int(ts.WSCol) > minTerminalWidth {
		width = int(ts.WSCol)
	}
	return CombineWidth(sp, width)
}

// CombineWidth is Combine with an explicit column budget.
func CombineWidth(sp []Sprite, termWidth int) (*sprites.Bitmap, error) {
	if len(sp) == 0 {
		return nil, fmt.Errorf("no sprites to combine")
	}

	rows := layoutRows(sp, termWidth)

	canvasW, canvasH := 0, 0
	for i, row := range rows {
		w, h := rowSize(sp, row)
		if w > canvasW {
			canvasW = w
		}
		canvasH += h
		if i > 0 {
			canvasH += spriteSpacing
		}
	}
	glog.V(1).Infof("compositor: %d sprites in %d rows on a %dx%d canvas", len(sp), len(rows), canvasW, canvasH)

	canvas := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	yOffset := 0
	for _, row := range rows {
		_, rowH := rowSize(sp, row)
		xOffset := 0
		for _, idx := range row {
			bm := sp[idx].Bitmap
			// Sit on the bottom edge of the row.
			y := yOffset + rowH - bm.H
			r := image.Rect(xOffset, y, xOffset+bm.W, y+bm.H)
			draw.Draw(canvas, r, bm.Image(), image.Point{}, draw.Src)
			xOffset += bm.W + spriteSpacing
		}
		yOffset += rowH + spriteSpacing
	}

	return sprites.FromImage("combined", canvas)
}

// layoutRows splits sprite indices into rows that fit the column
// budget. A sprite wider than the budget still gets a row of its own.
func layoutRows(sp []Sprite, termWidth int) [][]int {
	var rows [][]int
	var row []int
	rowW := 0
	for i := range sp {
		w := sp[i].Bitmap.W
		needed := w
		if len(row) > 0 {
			needed = rowW + spriteSpacing + w
		}
		if needed > termWidth && len(row) > 0 {
			rows = append(rows, row)
			row = []int{i}
			rowW = w
			continue
		}
		row = append(row, i)
		rowW = needed
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func rowSize(sp []Sprite, row []int) (w, h int) {
	for i, idx := range row {
		if i > 0 {
			w += spriteSpacing
		}
		w += sp[idx].Bitmap.W
		if sp[idx].Bitmap.H > h {
			h = sp[idx].Bitmap.H
		}
	}
	return w, h
}
