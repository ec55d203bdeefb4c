package vehicle

import (
	"strconv"

	"github.com/davidpeckham/vin/internal/str"
)

// YearUnknown marks a model year that could not be determined from the
// VIN, such as a `0` year character.
const YearUnknown = 0

// DecodedVehicle is the result of resolving a VIN against the vPIC
// snapshot. String fields are empty when the snapshot has no value for
// them; decoding shortfalls are not errors.
type DecodedVehicle struct {
	VIN                  string `json:"vin"`
	WMI                  string `json:"wmi"`
	Manufacturer         string `json:"manufacturer,omitempty"`
	Make                 string `json:"make,omitempty"`
	Model                string `json:"model,omitempty"`
	Series               string `json:"series,omitempty"`
	Trim                 string `json:"trim,omitempty"`
	BodyClass            string `json:"bodyClass,omitempty"`
	VehicleType          string `json:"vehicleType,omitempty"`
	ModelYear            int    `json:"modelYear,omitempty"`
	Country              string `json:"country,omitempty"`
	PlantCity            string `json:"plantCity,omitempty"`
	PlantState           string `json:"plantState,omitempty"`
	PlantCountry         string `json:"plantCountry,omitempty"`
	PlantCompany         string `json:"plantCompany,omitempty"`
	ElectrificationLevel string `json:"electrificationLevel,omitempty"`
}

// Description returns "{year} {make} {model} {series} {trim}" with
// empty parts elided and single spaces between the rest.
func (v DecodedVehicle) Description() string {
	var year string
	if v.ModelYear != YearUnknown {
		year = strconv.Itoa(v.ModelYear)
	}
	return str.JoinNonBlank([]string{year, v.Make, v.Model, v.Series, v.Trim})
}
