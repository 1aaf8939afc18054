// Package dex parses the sprite archive's names.csv into an index over
// creature dex ids, display names and sprite filename stems.
//
// The file is headerless. Line N carries the display name and the
// filename stem of the creature with dex id N.
package dex

import (
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io"
	"math/rand"
	"strings"

	"github.com/golang/glog"
)

// Index is a parsed representation of names.csv. It is read-only after
// NewIndex returns.
type Index struct {
	byID   map[int]string
	byFile map[string]int
	names  []string

	signature uint32
}

// InvalidIDError reports a dex id outside the index.
type InvalidIDError struct {
	ID, Max int
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("dex id %d is not valid (must be between 1 and %d)", e.ID, e.Max)
}

// EmptyRegionError reports a region with no indexed creatures.
type EmptyRegionError struct {
	Region Region
}

func (e EmptyRegionError) Error() string {
	return fmt.Sprintf("no creatures found in region %q", string(e.Region))
}

// NewIndex reads names.csv from the passed reader and builds an index.
func NewIndex(r io.Reader) (*Index, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	sig := fnv.New32a()
	idx := &Index{
		byID:   make(map[int]string, 1000),
		byFile: make(map[string]int, 1000),
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse names.csv: %s", err)
		}
		id := len(idx.names) + 1
		idx.byID[id] = rec[1]
		idx.byFile[rec[1]] = id
		idx.names = append(idx.names, rec[0])
		sig.Write([]byte(rec[0]))
		sig.Write([]byte(rec[1]))
	}
	idx.signature = sig.Sum32()
	glog.V(1).Infof("dex index loaded: %d entries, signature %08x", len(idx.names), idx.signature)
	return idx, nil
}

// Len returns the number of indexed creatures.
func (x *Index) Len() int {
	return len(x.names)
}

// Signature identifies the index contents, e.g. for cache validators.
func (x *Index) Signature() uint32 {
	return x.signature
}

// ByID returns the sprite filename stem for a dex id.
func (x *Index) ByID(id int) (string, error) {
	f, ok := x.byID[id]
	if !ok {
		return "", InvalidIDError{ID: id, Max: len(x.names)}
	}
	return f, nil
}

// HasFile reports whether the filename stem is a known dex entry.
func (x *Index) HasFile(file string) bool {
	_, ok := x.byFile[file]
	return ok
}

// DisplayName formats a filename stem into a display name. Stems known
// to the index use the curated name column; anything else gets a raw
// title-cased rendition.
func (x *Index) DisplayName(file string) string {
	if id, ok := x.byFile[file]; ok && id-1 < len(x.names) {
		return x.names[id-1]
	}
	return titleCase(file)
}

// Random returns a uniformly random filename stem.
func (x *Index) Random() (string, error) {
	if len(x.names) == 0 {
		return "", fmt.Errorf("dex index is empty")
	}
	return x.ByID(rand.Intn(len(x.names)) + 1)
}

// ByRegion returns a random filename stem whose dex id falls within the
// region's range. The range is clipped to the indexed entries.
func (x *Index) ByRegion(reg Region) (string, error) {
	lo, hi, ok := reg.Range()
	if !ok || lo > len(x.names) {
		return "", EmptyRegionError{Region: reg}
	}
	if hi > len(x.names) {
		hi = len(x.names)
	}
	return x.ByID(lo + rand.Intn(hi-lo+1))
}

// titleCase renders a filename stem like "mime-jr" as "Mime Jr".
func titleCase(file string) string {
	words := strings.Split(strings.ReplaceAll(file, "'", ""), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
