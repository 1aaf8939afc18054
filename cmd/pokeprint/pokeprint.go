// pokeprint renders creature sprites from the archive as colored text
// on the terminal.
//
// Each positional argument selects one creature: a name ("pikachu"), a
// dex id ("25"), a region ("kanto", picks one at random) or "random".
// The selected sprites are combined onto one canvas, wrapped at the
// terminal width, and printed with half-block glyphs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/pokeprint/compositor"
	"badc0de.net/pkg/pokeprint/datafiles"
	"badc0de.net/pkg/pokeprint/dex"
	"badc0de.net/pkg/pokeprint/halfblock"
	"badc0de.net/pkg/pokeprint/locator"
	"badc0de.net/pkg/pokeprint/paths"
	"badc0de.net/pkg/pokeprint/sprites"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gookit/color"
)

var (
	shiny  = flag.Bool("shiny", false, "show the shiny variant")
	female = flag.Bool("female", false, "show the female variant where the archive has one")
	form   = flag.String("form", "", "sprite form suffix, e.g. origin")

	mega   = flag.Bool("mega", false, "mega form")
	megaX  = flag.Bool("mega-x", false, "mega X form")
	megaY  = flag.Bool("mega-y", false, "mega Y form")
	alolan = flag.Bool("alolan", false, "Alolan form")
	galar  = flag.Bool("galar", false, "Galarian form")
	hisui  = flag.Bool("hisui", false, "Hisuian form")
	gmax   = flag.Bool("gmax", false, "Gigantamax form")
	noble  = flag.Bool("noble", false, "noble form (requires -hisui)")

	colorMode = flag.String("color", "truecolor", "color mode: truecolor, ansi256 or off")
	scale     = flag.Uint("scale", 1, "integer upscale factor for the combined sprite")
	useRaster = flag.Bool("rasterm", false, "print a native image where the terminal speaks kitty/iterm/sixel")
	useITerm  = flag.Bool("iterm", false, "print with the iTerm2 inline image escape code")
	bigName   = flag.Bool("bigname", false, "print the names as a large ascii banner")
	hideName  = flag.Bool("hidename", false, "do not print the names")
	noTrim    = flag.Bool("notrim", false, "keep transparent sprite borders")

	namesCSVPath   string
	spritesDirPath string
)

func fatalf(format string, arg ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", arg...)
	os.Exit(1)
}

// loadIndex reads names.csv from disk, or falls back to the bundled
// Gen I index.
func loadIndex() (*dex.Index, error) {
	var r io.Reader
	if namesCSVPath != "" {
		f, err := os.Open(namesCSVPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		glog.V(1).Infof("no names.csv found, using the bundled index")
		r = datafiles.NamesCSV()
	}
	return dex.NewIndex(r)
}

func buildOptions() locator.Options {
	ff := locator.FormFlags{
		Mega: *mega, MegaX: *megaX, MegaY: *megaY,
		Alolan: *alolan, Galar: *galar, Hisui: *hisui,
		Gmax: *gmax, Noble: *noble,
		Form: *form,
	}
	opts, err := ff.Build(*shiny || locator.RollShiny(), *female)
	if err != nil {
		fatalf("%v", err)
	}
	return opts
}

func main() {
	paths.SetupFilePathFlag("names.csv", "names_csv_path", &namesCSVPath)
	paths.SetupDirPathFlag("sprites", "sprites_dir_path", &spritesDirPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	args := flag.Args()
	if len(args) == 0 {
		fatalf("you must specify the creature you want to display")
	}

	idx, err := loadIndex()
	if err != nil {
		fatalf("error reading creature list: %v", err)
	}

	if spritesDirPath == "" {
		fatalf("could not find the sprite archive; pass -sprites_dir_path")
	}
	cache := sprites.NewFrameCache(sprites.NewArchive(os.DirFS(spritesDirPath)))

	opts := buildOptions()

	var sp []compositor.Sprite
	for _, arg := range args {
		sel := locator.ParseSelection(arg)
		stem, err := sel.Eval(idx)
		if err != nil {
			fatalf("error selecting creature: %v", err)
		}

		o := opts
		if sel.Randomized() {
			// A specific form makes no sense for a random pick.
			o.Form = ""
			o.Female = false
		}

		key, err := locator.Resolve(idx, stem, o)
		if err != nil {
			fatalf("%v", err)
		}
		bm, err := cache.Extract(key)
		if err != nil {
			fatalf("error loading sprite: %v", err)
		}
		if !*noTrim {
			bm = sprites.Trim(bm)
		}
		sp = append(sp, compositor.Sprite{Name: idx.DisplayName(stem), Bitmap: bm})
	}

	combined, err := compositor.Combine(sp)
	if err != nil {
		fatalf("error combining sprites: %v", err)
	}
	if *scale > 1 {
		if combined, err = upscale(combined, *scale); err != nil {
			fatalf("error scaling sprite: %v", err)
		}
	}

	if !*hideName {
		printNames(sp, opts.Shiny)
	}

	if *useITerm {
		if !halfblock.WriteITerm(os.Stdout, combined.Image(), "sprite.png") {
			fatalf("terminal does not support iTerm2 inline images")
		}
		return
	}
	if *useRaster {
		if !halfblock.WriteRaster(os.Stdout, combined.Image()) {
			fatalf("terminal does not support any raster image protocol")
		}
		return
	}

	mode, err := halfblock.ParseMode(*colorMode)
	if err != nil {
		fatalf("%v", err)
	}
	enc := halfblock.Encoder{Mode: mode}
	// Built fully before writing: a failed run leaves stdout empty.
	os.Stdout.WriteString(enc.Encode(halfblock.Render(combined)))
}

// printNames writes the display names to stderr, so piping stdout still
// captures only the sprite.
func printNames(sp []compositor.Sprite, shiny bool) {
	names := make([]string, len(sp))
	for i := range sp {
		names[i] = sp[i].Name
	}
	joined := strings.Join(names, ", ")
	if *bigName {
		joined = figure.NewFigure(joined, "", true).String()
	}
	if shiny {
		joined = color.Yellow.Sprint(joined)
	}
	fmt.Fprintln(os.Stderr, joined)
}
