package modelio

import (
	"github.com/davidpeckham/vin/pkg/ent/model"
	"gorm.io/gorm"
)

type modelio struct {
	db *gorm.DB
}

// New returns a new instance of Model
func New(db *gorm.DB) model.Model {
	res := modelio{db: db}
	return &res
}

// Migrate creates snapshot tables in the database.
func (m *modelio) Migrate() error {
	return m.db.AutoMigrate(
		&model.Manufacturer{},
		&model.Make{},
		&model.VehicleType{},
		&model.Element{},
		&model.Wmi{},
		&model.Pattern{},
		&model.Version{},
	)
}
