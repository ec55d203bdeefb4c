// Package buildio assembles a vPIC SQLite snapshot from CSV extracts.
// It is the write side of the snapshot lifecycle; the library proper
// only ever reads the result.
package buildio

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davidpeckham/vin/internal/ent/build"
	"github.com/davidpeckham/vin/internal/ent/kv"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/gnames/gnsys"
	"gorm.io/gorm"
)

// buildio is a struct that implements build.Builder interface.
type buildio struct {
	db  *gorm.DB
	cfg config.Config
	kv  kv.KeyVal
}

// New returns a new instance of Builder writing to dbPath.
func New(cfg config.Config, kvStore kv.KeyVal, dbPath string) (build.Builder, error) {
	res := buildio{
		cfg: cfg,
		kv:  kvStore,
	}

	if err := gnsys.MakeDir(filepath.Dir(dbPath)); err != nil {
		slog.Error("Cannot create output directory", "error", err, "path", dbPath)
		return nil, err
	}
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		slog.Error("Cannot remove stale snapshot", "error", err, "path", dbPath)
		return nil, err
	}

	db, err := gormConn(dbPath)
	if err != nil {
		slog.Error("Cannot create snapshot database", "error", err)
		return nil, err
	}
	res.db = db
	if err = res.migrate(); err != nil {
		slog.Error("Cannot migrate snapshot schema", "error", err)
		return nil, err
	}
	return &res, nil
}

// Build reads CSV extract files and imports their data into the
// snapshot, reference tables first so patterns can be checked against
// them.
func (b *buildio) Build() error {
	var err error
	defer closeConn(b.db)

	if err = b.kv.Open(); err != nil {
		slog.Error("Cannot open key-value store", "error", err)
		return err
	}
	defer b.kv.Close()

	if err = b.importRefs(); err != nil {
		slog.Error("Cannot import reference tables", "error", err)
		return err
	}
	if err = b.importWMIs(); err != nil {
		slog.Error("Cannot import wmi table", "error", err)
		return err
	}
	if err = b.importPatterns(); err != nil {
		slog.Error("Cannot import pattern table", "error", err)
		return err
	}
	if err = b.importVersion(); err != nil {
		slog.Error("Cannot import version row", "error", err)
		return err
	}
	return nil
}
