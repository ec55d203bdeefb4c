// Package snapio loads the bundled vPIC snapshot into immutable
// in-memory indexes. The SQLite handle lives only for the duration of
// the load; nothing mutable is shared with readers afterwards.
package snapio

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/davidpeckham/vin/data"
	"github.com/davidpeckham/vin/pkg/ent/snapshot"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/gnames/gnsys"
)

type snapio struct {
	wmi3     map[string]snapshot.WMI
	wmi6     map[string][]snapshot.WMI
	patterns map[string][]snapshot.Pattern
	elements map[int]string
	version  string
	released string
	maxYear  int
}

// New loads a snapshot and builds its indexes. When cfg.DBPath is
// empty the embedded image is materialized under cfg.CacheDir first.
func New(cfg config.Config) (snapshot.Snapshot, error) {
	path := cfg.DBPath
	var err error
	if path == "" {
		path, err = materialize(cfg.CacheDir)
		if err != nil {
			return nil, err
		}
	}
	exists, err := gnsys.FileExists(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat snapshot: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("snapshot %s does not exist", path)
	}

	res := &snapio{
		wmi3:     make(map[string]snapshot.WMI),
		wmi6:     make(map[string][]snapshot.WMI),
		patterns: make(map[string][]snapshot.Pattern),
		elements: make(map[int]string),
	}
	if err = res.load(path); err != nil {
		return nil, err
	}
	return res, nil
}

// materialize writes the embedded snapshot image to the cache
// directory so SQLite can open it. The file name carries a digest of
// the image, so a library upgrade lands in a fresh file and an
// existing file is never rewritten.
func materialize(cacheDir string) (string, error) {
	if err := gnsys.MakeDir(cacheDir); err != nil {
		slog.Error("Cannot create cache directory", "error", err, "dir", cacheDir)
		return "", err
	}
	bs := data.VpicDB()
	sum := sha256.Sum256(bs)
	path := filepath.Join(cacheDir, fmt.Sprintf("vpic-%x.db", sum[:6]))

	exists, err := gnsys.FileExists(path)
	if err != nil {
		return "", fmt.Errorf("cannot stat cached snapshot: %w", err)
	}
	if exists {
		return path, nil
	}
	if err = os.WriteFile(path, bs, 0o644); err != nil {
		slog.Error("Cannot materialize snapshot", "error", err, "path", path)
		return "", err
	}
	return path, nil
}

func (s *snapio) WMI3(code string) (snapshot.WMI, bool) {
	w, ok := s.wmi3[code]
	return w, ok
}

func (s *snapio) WMI6(code, visSuffix string) (snapshot.WMI, bool) {
	for _, w := range s.wmi6[code] {
		if w.VisSuffix == visSuffix {
			return w, true
		}
	}
	return snapshot.WMI{}, false
}

func (s *snapio) Patterns(wmiCode string) []snapshot.Pattern {
	return s.patterns[wmiCode]
}

func (s *snapio) ElementName(id int) string {
	return s.elements[id]
}

func (s *snapio) MaxModelYear() int {
	return s.maxYear
}

func (s *snapio) Version() (string, string) {
	return s.version, s.released
}

// maxYearFor derives the clamp horizon from the snapshot release
// date. Manufacturers may assign VINs to the model year after the
// release year, so the horizon is release year plus one.
func maxYearFor(releaseDate string) (int, bool) {
	t, err := time.Parse("2006-01-02", releaseDate)
	if err != nil {
		return 0, false
	}
	return t.Year() + 1, true
}
