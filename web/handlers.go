// Package web serves sprite previews over HTTP: PNG and animated GIF
// frames, half-block text renditions, and a browsable index.
package web

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"sync"

	"github.com/bradfitz/iter"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/pokeprint/dex"
	"badc0de.net/pkg/pokeprint/halfblock"
	"badc0de.net/pkg/pokeprint/locator"
	"badc0de.net/pkg/pokeprint/sprites"
)

// Handler answers preview requests from one archive.
type Handler struct {
	lock  sync.Mutex
	idx   *dex.Index
	cache *sprites.FrameCache
}

// NewHandler constructs a web handler over the passed index and frame
// cache.
func NewHandler(idx *dex.Index, cache *sprites.FrameCache) *Handler {
	return &Handler{idx: idx, cache: cache}
}

// Router returns a mux with all preview routes registered.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/creature/{name:[a-z0-9-]+}", h.creatureHandler)
	r.HandleFunc("/sprite/{name:[a-z0-9-]+}.png", h.spritePNGHandler)
	r.HandleFunc("/sprite/{name:[a-z0-9-]+}.txt", h.spriteTextHandler)
	r.HandleFunc("/sprite/{name:[a-z0-9-]+}.gif", h.spriteGIFHandler)
	return r
}

// options reads the variant selection from the query string.
func options(r *http.Request) locator.Options {
	q := r.URL.Query()
	return locator.Options{
		Shiny:  q.Get("shiny") == "1",
		Female: q.Get("female") == "1",
		Form:   q.Get("form"),
	}
}

// frame resolves and extracts one trimmed frame, translating pipeline
// errors to HTTP status codes. It reports false after writing the
// error response.
func (h *Handler) frame(w http.ResponseWriter, name string, opts locator.Options) (*sprites.Bitmap, bool) {
	key, err := locator.Resolve(h.idx, name, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	bm, err := h.cache.Extract(key)
	if err != nil {
		status := http.StatusInternalServerError
		if _, ok := err.(sprites.DecodeError); !ok {
			// Open errors mean the variant is not in the archive.
			status = http.StatusNotFound
		}
		glog.Errorf("extract %q: %v", key, err)
		http.Error(w, err.Error(), status)
		return nil, false
	}
	return sprites.Trim(bm), true
}

// etag builds a weak cache validator from the index signature and the
// request variant. Bump generation when the rendering changes.
func (h *Handler) etag(kind, name string, opts locator.Options) string {
	generation := 1
	return fmt.Sprintf(`W/"%s:%d:%08x:%s:%v:%v:%s"`, kind, generation, h.idx.Signature(), name, opts.Shiny, opts.Female, opts.Form)
}

func writeCacheHeaders(w http.ResponseWriter, etag, mime string) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
}

func notModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	if r.Header.Get("If-None-Match") != etag {
		return false
	}
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
	return true
}

func (h *Handler) spritePNGHandler(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	name := mux.Vars(r)["name"]
	opts := options(r)
	etag := h.etag("png", name, opts)
	if notModified(w, r, etag) {
		return
	}

	bm, ok := h.frame(w, name, opts)
	if !ok {
		return
	}
	writeCacheHeaders(w, etag, "image/png")
	w.WriteHeader(http.StatusOK)
	png.Encode(w, bm.Image())
}

func (h *Handler) spriteTextHandler(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	name := mux.Vars(r)["name"]
	opts := options(r)

	mode := halfblock.ModeTrueColor
	if s := r.URL.Query().Get("color"); s != "" {
		var err error
		if mode, err = halfblock.ParseMode(s); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	bm, ok := h.frame(w, name, opts)
	if !ok {
		return
	}
	enc := halfblock.Encoder{Mode: mode}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, enc.Encode(halfblock.Render(bm)))
}

// spriteGIFHandler animates between the regular and shiny variant.
func (h *Handler) spriteGIFHandler(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	name := mux.Vars(r)["name"]
	opts := options(r)
	etag := h.etag("gif", name, opts)
	if notModified(w, r, etag) {
		return
	}

	var frames []*sprites.Bitmap
	for _, shiny := range []bool{false, true} {
		o := opts
		o.Shiny = shiny
		bm, ok := h.frame(w, name, o)
		if !ok {
			return
		}
		frames = append(frames, bm)
	}

	// All GIF frames share one canvas, large enough for either variant.
	bounds := image.Rectangle{}
	for _, bm := range frames {
		bounds = bounds.Union(image.Rect(0, 0, bm.W, bm.H))
	}

	var g gif.GIF
	q := quantize.MedianCutQuantizer{}
	for _, bm := range frames {
		img := bm.Image()
		pal := q.Quantize(make(color.Palette, 0, 255), img)

		// Keep index 0 transparent so the background shows through.
		p := image.NewPaletted(bounds, append(color.Palette{color.Transparent}, pal...))
		draw.Draw(p, img.Bounds(), img, image.Point{}, draw.Over)

		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, 75)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0

	writeCacheHeaders(w, etag, "image/gif")
	w.WriteHeader(http.StatusOK)
	gif.EncodeAll(w, &g)
}

// creatureHandler shows one creature with its sprite inlined as a data
// URL, plus links to the raw renditions.
func (h *Handler) creatureHandler(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	name := mux.Vars(r)["name"]
	opts := options(r)
	bm, ok := h.frame(w, name, opts)
	if !ok {
		return
	}

	buf := &bytes.Buffer{}
	png.Encode(buf, bm.Image())
	du := dataurl.New(buf.Bytes(), "image/png")
	byt, err := du.MarshalText()
	if err != nil {
		http.Error(w, "failed to encode data url", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<!doctype html><title>%s</title>", h.idx.DisplayName(name))
	fmt.Fprintf(w, "<h1>%s</h1>", h.idx.DisplayName(name))
	fmt.Fprintf(w, `<img src=%q style="image-rendering: pixelated; width: %dpx">`, string(byt), bm.W*4)
	fmt.Fprintf(w, `<p><a href="/sprite/%s.png">png</a> <a href="/sprite/%s.txt">text</a> <a href="/sprite/%s.gif">shiny gif</a></p>`, name, name, name)
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "<!doctype html><title>pokeprint</title><h1>pokeprint</h1><ol>")
	for i := range iter.N(h.idx.Len()) {
		stem, err := h.idx.ByID(i + 1)
		if err != nil {
			glog.Errorf("index entry %d: %v", i+1, err)
			continue
		}
		fmt.Fprintf(w, `<li><a href="/creature/%s">%s</a></li>`, stem, h.idx.DisplayName(stem))
	}
	fmt.Fprint(w, "</ol>")
}
