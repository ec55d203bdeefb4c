package model

import "database/sql"

// Wmi is a World Manufacturer Identifier assignment. A NULL vis_suffix
// marks a mass-market three-character WMI; specialized manufacturers
// carry a suffix that must also match VIN positions 12-14.
type Wmi struct {
	Wmi            string         `gorm:"column:wmi;type:varchar(3);uniqueIndex:wmi_code_suffix;not null"`
	VisSuffix      sql.NullString `gorm:"column:vis_suffix;type:varchar(3);uniqueIndex:wmi_code_suffix"`
	ManufacturerID int            `gorm:"column:manufacturer_id;not null"`
	MakeID         sql.NullInt32  `gorm:"column:make_id"`
	VehicleTypeID  sql.NullInt32  `gorm:"column:vehicle_type_id"`
	Country        sql.NullString `gorm:"column:country;type:varchar(100)"`
	CreatedOn      sql.NullString `gorm:"column:created_on;type:varchar(10)"`
	UpdatedOn      sql.NullString `gorm:"column:updated_on;type:varchar(10)"`
}

func (Wmi) TableName() string { return "wmi" }

// Pattern assigns one element value to VINs whose descriptor section
// matches key_pattern under the given WMI and model-year scope.
type Pattern struct {
	ID         int           `gorm:"column:id;primaryKey;autoIncrement:false"`
	Wmi        string        `gorm:"column:wmi;type:varchar(3);index:pattern_wmi;not null"`
	KeyPattern string        `gorm:"column:key_pattern;type:varchar(7);not null"`
	ElementID  int           `gorm:"column:element_id;not null"`
	Value      string        `gorm:"column:value;type:varchar(255);not null"`
	YearFrom   sql.NullInt32 `gorm:"column:year_from"`
	YearTo     sql.NullInt32 `gorm:"column:year_to"`
}

func (Pattern) TableName() string { return "pattern" }

// Element is a vPIC decoding element such as Make, Model, or Series.
type Element struct {
	ID    int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name  string `gorm:"column:name;type:varchar(100);not null"`
	Group string `gorm:"column:group;type:varchar(100)"`
}

func (Element) TableName() string { return "element" }

type Make struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name;type:varchar(100);not null"`
}

func (Make) TableName() string { return "make" }

type Manufacturer struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name;type:varchar(255);not null"`
}

func (Manufacturer) TableName() string { return "manufacturer" }

type VehicleType struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name;type:varchar(100);not null"`
}

func (VehicleType) TableName() string { return "vehicle_type" }

// Version is the single provenance row of a snapshot.
type Version struct {
	Version     string `gorm:"column:version;type:varchar(20);not null"`
	ReleaseDate string `gorm:"column:release_date;type:varchar(10);not null"`
}

func (Version) TableName() string { return "version" }
