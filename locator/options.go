package locator

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

const defaultShinyRate = 8192

// FormFlags mirror the command line's form shorthand flags. At most one
// shorthand may be set; Form is the free-form escape hatch.
type FormFlags struct {
	Mega, MegaX, MegaY   bool
	Alolan, Galar, Hisui bool
	Gmax, Noble          bool
	Form                 string
}

// Build validates the flags and produces variant options. Noble is a
// Hisui-only form and modifies the form it accompanies.
func (ff FormFlags) Build(shiny, female bool) (Options, error) {
	shorthands := []struct {
		name string
		set  bool
	}{
		{"mega", ff.Mega},
		{"mega-x", ff.MegaX},
		{"mega-y", ff.MegaY},
		{"alola", ff.Alolan},
		{"galar", ff.Galar},
		{"hisui", ff.Hisui},
		{"gmax", ff.Gmax},
	}

	var active []string
	for _, sh := range shorthands {
		if sh.set {
			active = append(active, sh.name)
		}
	}

	form := ""
	switch len(active) {
	case 0:
		form = ff.Form
	case 1:
		form = active[0]
	default:
		return Options{}, fmt.Errorf("conflicting form flags: %s", strings.Join(active, ", "))
	}

	if ff.Noble {
		if form == "" {
			form = "hisui-noble"
		} else {
			form = form + "-noble"
		}
		if !strings.Contains(form, "hisui") {
			return Options{}, fmt.Errorf("form %q is not valid: noble requires hisui", form)
		}
	}

	return Options{Shiny: shiny, Female: female, Form: form}, nil
}

// RollShiny decides shiny status by chance. The odds come from the
// POKEPRINT_SHINY_RATE environment variable, one in 8192 when unset.
func RollShiny() bool {
	rate := defaultShinyRate
	if s := os.Getenv("POKEPRINT_SHINY_RATE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			rate = n
		}
	}
	return rand.Intn(rate) == 0
}
