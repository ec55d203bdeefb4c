package buildio

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davidpeckham/vin/pkg/ent/model"
)

const (
	verVersionF = 0
	verDateF    = 1
)

// importVersion writes the single provenance row.
func (b *buildio) importVersion() error {
	r, f, err := b.openCSV("version.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	row, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("version.csv has no data row")
	}
	if err != nil {
		return fmt.Errorf("cannot read version.csv: %w", err)
	}
	ver := model.Version{Version: row[verVersionF], ReleaseDate: row[verDateF]}
	if err = b.db.Create(&ver).Error; err != nil {
		return fmt.Errorf("cannot insert version row: %w", err)
	}
	slog.Info("Snapshot provenance", "version", ver.Version, "released", ver.ReleaseDate)
	return nil
}
