//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package compositor

import (
	"golang.org/x/crypto/ssh/terminal"
)

// TermSize carries the terminal dimensions in cells and, where the
// terminal reports them, in pixels.
type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

// GetTermSize queries the terminal for its size in cells. Pixel sizes
// are not available on this platform.
func GetTermSize() (TermSize, error) {
	var err error
	var w, h int
	if w, h, err = terminal.GetSize(0); err == nil {
		return TermSize{WSRow: uint(h), WSCol: uint(w)}, nil
	}
	return TermSize{}, err
}
