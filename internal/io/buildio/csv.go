package buildio

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
)

// openCSV opens a CSV extract file in the dump directory and consumes
// its header row.
func (b *buildio) openCSV(name string) (*csv.Reader, *os.File, error) {
	path := filepath.Join(b.cfg.DumpDir, name)
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Cannot open csv file", "error", err, "path", path)
		return nil, nil, err
	}
	r := csv.NewReader(f)
	if _, err = r.Read(); err != nil {
		f.Close()
		slog.Error("Cannot read csv header", "error", err, "path", path)
		return nil, nil, err
	}
	return r, f, nil
}
