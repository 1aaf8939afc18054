package dex

import "strings"

// Region names a contiguous slice of the dex.
type Region string

const (
	Kanto  Region = "kanto"
	Johto  Region = "johto"
	Hoenn  Region = "hoenn"
	Sinnoh Region = "sinnoh"
	Unova  Region = "unova"
	Kalos  Region = "kalos"
	Alola  Region = "alola"
	Galar  Region = "galar"
)

// Range returns the inclusive dex id range covered by the region.
func (r Region) Range() (lo, hi int, ok bool) {
	switch r {
	case Kanto:
		return 1, 151, true
	case Johto:
		return 152, 251, true
	case Hoenn:
		return 252, 386, true
	case Sinnoh:
		return 387, 493, true
	case Unova:
		return 494, 649, true
	case Kalos:
		return 650, 721, true
	case Alola:
		return 722, 809, true
	case Galar:
		return 810, 905, true
	}
	return 0, 0, false
}

// ParseRegion reports whether the argument names a known region.
func ParseRegion(s string) (Region, bool) {
	r := Region(strings.ToLower(s))
	if _, _, ok := r.Range(); ok {
		return r, true
	}
	return "", false
}
