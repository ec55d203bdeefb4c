// Package dumpio exports vPIC reference tables from a locally
// mirrored MySQL copy of the NHTSA database into the CSV extracts
// that buildio turns into a snapshot.
package dumpio

import (
	"database/sql"
	"log/slog"

	"github.com/davidpeckham/vin/internal/ent/dump"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/gnames/gnsys"
)

// dumpio is a struct that implements dump.Dumper interface.
type dumpio struct {
	db  *sql.DB
	cfg config.Config
}

// New returns a new instance of Dumper.
func New(cfg config.Config) (dump.Dumper, error) {
	db, err := mysqlConn(cfg)
	if err != nil {
		slog.Error("Cannot connect to MySQL", "error", err)
		return nil, err
	}
	if err = gnsys.MakeDir(cfg.DumpDir); err != nil {
		slog.Error("Cannot create dump directory", "error", err, "dir", cfg.DumpDir)
		return nil, err
	}
	return &dumpio{db: db, cfg: cfg}, nil
}

// Dump writes one CSV extract per snapshot table.
func (d *dumpio) Dump() error {
	var err error
	defer d.db.Close()

	for _, t := range dumpTables {
		if err = d.dumpTable(t); err != nil {
			slog.Error("Cannot dump table", "error", err, "file", t.file)
			return err
		}
	}
	return nil
}
