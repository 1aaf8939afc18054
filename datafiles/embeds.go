// Package datafiles bundles the fallback archive index.
package datafiles

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed names.csv
var namesCSVEmbed []byte

// NamesCSV returns a reader over the bundled names.csv (the original
// 151 entries). It is used when no archive index is found on disk.
func NamesCSV() io.Reader {
	return bytes.NewReader(namesCSVEmbed)
}
