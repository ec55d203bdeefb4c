package buildio

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/davidpeckham/vin/internal/ent/kv"
	"github.com/davidpeckham/vin/pkg/ent/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// List of fields from the wmi CSV file. The value corresponds to the
// position of a field in a row.
const (
	wmiCodeF    = 0
	wmiSuffixF  = 1
	wmiMfrF     = 2
	wmiMakeF    = 3
	wmiVehTypeF = 4
	wmiCountryF = 5
	wmiCreatedF = 6
	wmiUpdatedF = 7
)

// importWMIs loads the wmi table. WMI codes also go to the key-value
// store so pattern rows can be checked against them.
func (b *buildio) importWMIs() error {
	r, f, err := b.openCSV("wmi.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	titler := cases.Title(language.AmericanEnglish)
	var rows []model.Wmi
	var recs []kv.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("cannot read wmi.csv: %w", err)
		}
		mfrID, err := strconv.Atoi(row[wmiMfrF])
		if err != nil {
			return fmt.Errorf("bad manufacturer id for wmi %s: %w", row[wmiCodeF], err)
		}
		rows = append(rows, model.Wmi{
			Wmi:            row[wmiCodeF],
			VisSuffix:      nullString(row[wmiSuffixF]),
			ManufacturerID: mfrID,
			MakeID:         nullInt(row[wmiMakeF]),
			VehicleTypeID:  nullInt(row[wmiVehTypeF]),
			Country:        nullString(countryName(titler, row[wmiCountryF])),
			CreatedOn:      nullString(row[wmiCreatedF]),
			UpdatedOn:      nullString(row[wmiUpdatedF]),
		})
		recs = append(recs, kv.Record{Key: wmiKey(row[wmiCodeF]), Value: []byte(row[wmiCodeF])})
	}
	if err = b.kv.SetRecords(recs); err != nil {
		return fmt.Errorf("cannot store wmi records: %w", err)
	}
	if err = b.db.CreateInBatches(rows, insertBatch).Error; err != nil {
		return fmt.Errorf("cannot insert wmi rows: %w", err)
	}
	slog.Info("Imported wmi table", "rows", len(rows))
	return nil
}

// countryName tidies the all-caps country strings of older vPIC
// releases; mixed-case values pass through unchanged.
func countryName(titler cases.Caser, s string) string {
	if s == "" || s != strings.ToUpper(s) {
		return s
	}
	return titler.String(strings.ToLower(s))
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(s string) sql.NullInt32 {
	if s == "" {
		return sql.NullInt32{}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(n), Valid: true}
}
