package locator

import (
	"strconv"
	"strings"

	"badc0de.net/pkg/pokeprint/dex"
)

type selKind int

const (
	selName selKind = iota
	selDexID
	selRegion
	selRandom
)

// Selection is one positional command line argument, parsed. It is
// either a dex id, a region name, the literal "random" (or id 0), or a
// creature name.
type Selection struct {
	kind   selKind
	id     int
	region dex.Region
	name   string
}

// ParseSelection classifies a raw argument.
func ParseSelection(arg string) Selection {
	if id, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		if id == 0 {
			return Selection{kind: selRandom}
		}
		return Selection{kind: selDexID, id: id}
	}
	switch low := strings.ToLower(strings.TrimSpace(arg)); {
	case low == "random":
		return Selection{kind: selRandom}
	default:
		if reg, ok := dex.ParseRegion(low); ok {
			return Selection{kind: selRegion, region: reg}
		}
		return Selection{kind: selName, name: arg}
	}
}

// Randomized reports whether the selection picks an arbitrary creature.
// Variant options that name a specific form make no sense for such
// selections and are suppressed by callers.
func (s Selection) Randomized() bool {
	return s.kind == selRandom || s.kind == selRegion
}

// Eval resolves the selection to a sprite filename stem.
func (s Selection) Eval(x *dex.Index) (string, error) {
	switch s.kind {
	case selRandom:
		return x.Random()
	case selRegion:
		return x.ByRegion(s.region)
	case selDexID:
		return x.ByID(s.id)
	default:
		return s.name, nil
	}
}
