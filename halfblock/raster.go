package halfblock

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

// WriteITerm writes the sprite using iTerm2's inline image escape
// sequence, if the terminal supports it.
//
// https://www.iterm2.com/documentation-images.html
func WriteITerm(w io.Writer, img image.Image, fn string) bool {
	if !rasterm.IsTermItermWez() {
		return false
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, img)
	bEnc.Close()
	fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), img.Bounds().Size().X, img.Bounds().Size().Y, b.String())
	return true
}

// WriteRaster writes the sprite as a native terminal image over
// whichever raster protocol the terminal speaks: Kitty, iTerm2/WezTerm
// or Sixel. It reports whether any protocol applied; callers fall back
// to the half-block encoder otherwise.
func WriteRaster(w io.Writer, img image.Image) bool {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(w, img)
		fmt.Fprintf(w, "\n")
		return true
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(w, img)
		fmt.Fprintf(w, "\n")
		return true
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, img.Bounds(), img, image.ZP)

		rasterm.Settings{}.SixelWriteImage(w, palettedImage)
		fmt.Fprintf(w, "\n")
		return true
	}
	return false
}
