package snapio

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/davidpeckham/vin/pkg/ent/model"
	"github.com/davidpeckham/vin/pkg/ent/snapshot"
	"gorm.io/gorm"
)

// wmiRow is the denormalized shape of a WMI record with its reference
// names joined in.
type wmiRow struct {
	Wmi          string
	VisSuffix    sql.NullString
	Manufacturer string
	Make         sql.NullString
	VehicleType  sql.NullString
	Country      sql.NullString
	CreatedOn    sql.NullString
	UpdatedOn    sql.NullString
}

const wmiSQL = `
SELECT
  w.wmi, w.vis_suffix, mfr.name AS manufacturer, mk.name AS make,
  vt.name AS vehicle_type, w.country, w.created_on, w.updated_on
FROM wmi w
  JOIN manufacturer mfr ON mfr.id = w.manufacturer_id
  LEFT JOIN make mk ON mk.id = w.make_id
  LEFT JOIN vehicle_type vt ON vt.id = w.vehicle_type_id`

func (s *snapio) load(path string) error {
	db, err := gormConn(path)
	if err != nil {
		return err
	}
	defer closeConn(db)

	if err = s.loadWMIs(db); err != nil {
		return err
	}
	if err = s.loadPatterns(db); err != nil {
		return err
	}
	if err = s.loadElements(db); err != nil {
		return err
	}
	if err = s.loadVersion(db); err != nil {
		return err
	}
	slog.Debug(
		"Loaded vPIC snapshot",
		"wmis", len(s.wmi3), "patterns", len(s.patterns),
		"version", s.version,
	)
	return nil
}

func (s *snapio) loadWMIs(db *gorm.DB) error {
	var rows []wmiRow
	if err := db.Raw(wmiSQL).Scan(&rows).Error; err != nil {
		return fmt.Errorf("cannot read wmi table: %w", err)
	}
	for _, r := range rows {
		w := snapshot.WMI{
			Code:             r.Wmi,
			VisSuffix:        r.VisSuffix.String,
			ManufacturerName: r.Manufacturer,
			MakeName:         r.Make.String,
			VehicleTypeName:  r.VehicleType.String,
			Country:          r.Country.String,
			CreatedOn:        r.CreatedOn.String,
			UpdatedOn:        r.UpdatedOn.String,
		}
		if w.VisSuffix == "" {
			s.wmi3[w.Code] = w
		} else {
			s.wmi6[w.Code] = append(s.wmi6[w.Code], w)
		}
	}
	return nil
}

func (s *snapio) loadPatterns(db *gorm.DB) error {
	var rows []model.Pattern
	err := db.Raw(
		`SELECT id, wmi, key_pattern, element_id, value, year_from, year_to
		 FROM pattern`,
	).Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("cannot read pattern table: %w", err)
	}
	for _, r := range rows {
		p := snapshot.Pattern{
			ID:         r.ID,
			WMI:        r.Wmi,
			KeyPattern: r.KeyPattern,
			ElementID:  r.ElementID,
			Value:      r.Value,
			YearFrom:   int(r.YearFrom.Int32),
			YearTo:     int(r.YearTo.Int32),
		}
		s.patterns[p.WMI] = append(s.patterns[p.WMI], p)
	}
	for code := range s.patterns {
		snapshot.Order(s.patterns[code])
	}
	return nil
}

func (s *snapio) loadElements(db *gorm.DB) error {
	var rows []model.Element
	err := db.Raw(`SELECT id, name, "group" FROM element`).Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("cannot read element table: %w", err)
	}
	for _, r := range rows {
		s.elements[r.ID] = r.Name
	}
	return nil
}

func (s *snapio) loadVersion(db *gorm.DB) error {
	var row model.Version
	err := db.Raw(`SELECT version, release_date FROM version`).Scan(&row).Error
	if err != nil {
		return fmt.Errorf("cannot read version table: %w", err)
	}
	s.version = row.Version
	s.released = row.ReleaseDate

	if my, ok := maxYearFor(row.ReleaseDate); ok {
		s.maxYear = my
		return nil
	}
	// a snapshot with an unparseable release date can still vouch for
	// the years its patterns cover
	for _, ps := range s.patterns {
		for _, p := range ps {
			if p.YearTo > s.maxYear {
				s.maxYear = p.YearTo
			}
		}
	}
	return nil
}
