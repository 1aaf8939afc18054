// dexweb serves sprite previews over HTTP: PNG and GIF frames,
// half-block text renditions, and a browsable index.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/pokeprint/datafiles"
	"badc0de.net/pkg/pokeprint/dex"
	"badc0de.net/pkg/pokeprint/paths"
	"badc0de.net/pkg/pokeprint/sprites"
	"badc0de.net/pkg/pokeprint/web"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"golang.org/x/sync/errgroup"
)

var (
	listenAddr = flag.String("listen_address", ":8080", "address to serve on")

	namesCSVPath   string
	spritesDirPath string
)

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

func main() {
	paths.SetupFilePathFlag("names.csv", "names_csv_path", &namesCSVPath)
	paths.SetupDirPathFlag("sprites", "sprites_dir_path", &spritesDirPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	idx, err := loadIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading creature list: %v\n", err)
		os.Exit(1)
	}
	if spritesDirPath == "" {
		fmt.Fprintln(os.Stderr, "could not find the sprite archive; pass -sprites_dir_path")
		os.Exit(1)
	}
	cache := sprites.NewFrameCache(sprites.NewArchive(os.DirFS(spritesDirPath)))

	h := web.NewHandler(idx, cache)
	srv := &http.Server{
		Addr:    *listenAddr,
		Handler: handlers.CombinedLoggingHandler(os.Stdout, h.Router()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		glog.Infof("dexweb serving on %s", *listenAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		glog.Infof("dexweb shutting down")
		return srv.Shutdown(context.Background())
	})
	if err := g.Wait(); err != nil {
		glog.Exitf("dexweb: %v", err)
	}
}
