package buildio

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/davidpeckham/vin/internal/ent/kv"
	"github.com/davidpeckham/vin/pkg/ent/model"
	"github.com/davidpeckham/vin/pkg/ent/snapshot"
	"github.com/gnames/gnfmt"
)

// List of fields in the id/name reference CSV files. The value
// corresponds to the position of a field in a row.
const (
	refIDF   = 0
	refNameF = 1
)

const (
	elemIDF    = 0
	elemNameF  = 1
	elemGroupF = 2
)

// sqlite binds every column of every row in a batch as a variable, so
// batches stay well under the bind-variable limit.
const insertBatch = 500

// importRefs loads the manufacturer, make, vehicle_type, and element
// tables. Element records also go to the key-value store so pattern
// rows can be checked against them.
func (b *buildio) importRefs() error {
	slog.Info("Importing reference tables")

	if err := b.importManufacturers(); err != nil {
		return err
	}
	if err := b.importMakes(); err != nil {
		return err
	}
	if err := b.importVehicleTypes(); err != nil {
		return err
	}
	return b.importElements()
}

// readNames reads an id/name CSV extract.
func (b *buildio) readNames(file string) (map[int]string, error) {
	r, f, err := b.openCSV(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res := make(map[int]string)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", file, err)
		}
		id, err := strconv.Atoi(row[refIDF])
		if err != nil {
			return nil, fmt.Errorf("bad id in %s: %w", file, err)
		}
		res[id] = row[refNameF]
	}
	return res, nil
}

func (b *buildio) importManufacturers() error {
	names, err := b.readNames("manufacturer.csv")
	if err != nil {
		return err
	}
	rows := make([]model.Manufacturer, 0, len(names))
	for id, name := range names {
		rows = append(rows, model.Manufacturer{ID: id, Name: name})
	}
	if err = b.db.CreateInBatches(rows, insertBatch).Error; err != nil {
		return fmt.Errorf("cannot insert manufacturer rows: %w", err)
	}
	slog.Info("Imported manufacturer table", "rows", len(rows))
	return nil
}

func (b *buildio) importMakes() error {
	names, err := b.readNames("make.csv")
	if err != nil {
		return err
	}
	rows := make([]model.Make, 0, len(names))
	for id, name := range names {
		rows = append(rows, model.Make{ID: id, Name: name})
	}
	if err = b.db.CreateInBatches(rows, insertBatch).Error; err != nil {
		return fmt.Errorf("cannot insert make rows: %w", err)
	}
	slog.Info("Imported make table", "rows", len(rows))
	return nil
}

func (b *buildio) importVehicleTypes() error {
	names, err := b.readNames("vehicle_type.csv")
	if err != nil {
		return err
	}
	rows := make([]model.VehicleType, 0, len(names))
	for id, name := range names {
		rows = append(rows, model.VehicleType{ID: id, Name: name})
	}
	if err = b.db.CreateInBatches(rows, insertBatch).Error; err != nil {
		return fmt.Errorf("cannot insert vehicle_type rows: %w", err)
	}
	slog.Info("Imported vehicle_type table", "rows", len(rows))
	return nil
}

func (b *buildio) importElements() error {
	r, f, err := b.openCSV("element.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	enc := gnfmt.GNgob{}
	var rows []model.Element
	var recs []kv.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("cannot read element.csv: %w", err)
		}
		id, err := strconv.Atoi(row[elemIDF])
		if err != nil {
			return fmt.Errorf("bad element id: %w", err)
		}
		el := snapshot.Element{ID: id, Name: row[elemNameF], Group: row[elemGroupF]}
		val, err := enc.Encode(el)
		if err != nil {
			return fmt.Errorf("cannot encode element: %w", err)
		}
		recs = append(recs, kv.Record{Key: elementKey(id), Value: val})
		rows = append(rows, model.Element{ID: id, Name: el.Name, Group: el.Group})
	}
	if err = b.kv.SetRecords(recs); err != nil {
		return fmt.Errorf("cannot store element records: %w", err)
	}
	if err = b.db.CreateInBatches(rows, insertBatch).Error; err != nil {
		return fmt.Errorf("cannot insert element rows: %w", err)
	}
	slog.Info("Imported element table", "rows", len(rows))
	return nil
}

func elementKey(id int) []byte {
	return []byte("element:" + strconv.Itoa(id))
}

func wmiKey(code string) []byte {
	return []byte("wmi:" + code)
}
