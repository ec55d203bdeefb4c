package dumpio

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// table describes one CSV extract: the query against the mirror and
// the header of the resulting file.
type table struct {
	file   string
	header []string
	query  string
}

var dumpTables = []table{
	{
		file:   "manufacturer.csv",
		header: []string{"id", "name"},
		query:  "SELECT id, name FROM manufacturer ORDER BY id",
	},
	{
		file:   "make.csv",
		header: []string{"id", "name"},
		query:  "SELECT id, name FROM make ORDER BY id",
	},
	{
		file:   "vehicle_type.csv",
		header: []string{"id", "name"},
		query:  "SELECT id, name FROM vehicle_type ORDER BY id",
	},
	{
		file:   "element.csv",
		header: []string{"id", "name", "group"},
		query:  "SELECT id, name, `group` FROM element ORDER BY id",
	},
	{
		file: "wmi.csv",
		header: []string{"wmi", "vis_suffix", "manufacturer_id", "make_id",
			"vehicle_type_id", "country", "created_on", "updated_on"},
		query: `SELECT wmi, vis_suffix, manufacturer_id, make_id,
			vehicle_type_id, country, created_on, updated_on
			FROM wmi ORDER BY wmi, vis_suffix`,
	},
	{
		file: "pattern.csv",
		header: []string{"id", "wmi", "key_pattern", "element_id", "value",
			"year_from", "year_to"},
		query: `SELECT id, wmi, key_pattern, element_id, value,
			year_from, year_to FROM pattern ORDER BY id`,
	},
	{
		file:   "version.csv",
		header: []string{"version", "release_date"},
		query:  "SELECT version, release_date FROM version",
	},
}

func (d *dumpio) dumpTable(t table) error {
	slog.Info("Creating extract", "file", t.file)

	rows, err := d.db.Query(t.query)
	if err != nil {
		return fmt.Errorf("query for %s failed: %w", t.file, err)
	}
	defer rows.Close()

	f, err := os.Create(filepath.Join(d.cfg.DumpDir, t.file))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err = w.Write(t.header); err != nil {
		return err
	}

	vals := make([]sql.NullString, len(t.header))
	ptrs := make([]interface{}, len(vals))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	csvRow := make([]string, len(vals))

	var count int64
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("cannot scan %s row: %w", t.file, err)
		}
		for i := range vals {
			csvRow[i] = vals[i].String
		}
		if err = w.Write(csvRow); err != nil {
			return err
		}
		count++
		if count%50_000 == 0 {
			fmt.Printf("\rDownloaded %s rows to %s", humanize.Comma(count), t.file)
		}
	}
	fmt.Printf("\rDownloaded %s rows to %s\n", humanize.Comma(count), t.file)
	return rows.Err()
}
