// Package paths locates the sprite archive's datafiles on disk.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// possibleDirs lists the conventional locations of the archive, most
// specific first.
func possibleDirs() []string {
	dirs := []string{}
	if d := os.Getenv("POKEPRINT_DATA_DIR"); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, "datafiles")
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "pokeprint"))
	}
	dirs = append(dirs,
		"/usr/local/share/pokeprint",
		"/usr/share/pokeprint",
	)
	return dirs
}

// Find locates the passed datafile shortname and returns a path it can
// be opened at, or the empty string when no conventional location has
// it.
//
// For example, for "names.csv" it may return
// "/usr/share/pokeprint/names.csv".
func Find(fileName string) string {
	for _, dir := range possibleDirs() {
		path := filepath.Join(dir, fileName)
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// FindDir locates a datafile directory, such as the sprite tree
// "sprites", in the same places Find looks.
func FindDir(dirName string) string {
	for _, dir := range possibleDirs() {
		path := filepath.Join(dir, dirName)
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			glog.Infof("paths.FindDir(%q)=%s", dirName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would
// look, and opens it. If Find comes up empty, an error is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Errorf("could not find %q in any known location", fileName)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	return f, nil
}
