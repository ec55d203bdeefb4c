package vin

import (
	"sync"

	"github.com/davidpeckham/vin/internal/io/snapio"
	"github.com/davidpeckham/vin/internal/resolver"
	"github.com/davidpeckham/vin/pkg/config"
	"github.com/davidpeckham/vin/pkg/ent/snapshot"
	"github.com/davidpeckham/vin/pkg/ent/vehicle"
)

// decoder is an implementation of the Decoder interface.
type decoder struct {
	snap snapshot.Snapshot
}

// NewDecoder creates a Decoder over a loaded snapshot.
func NewDecoder(snap snapshot.Snapshot) Decoder {
	return &decoder{snap: snap}
}

func (d *decoder) VpicVersion() (string, string) {
	return d.snap.Version()
}

// Decode splits the VIN, resolves the model year, evaluates the
// snapshot patterns, and assembles the vehicle record.
func (d *decoder) Decode(v *VIN) (vehicle.DecodedVehicle, error) {
	s := v.String()
	year := decodeModelYear(s[9], s[6], d.snap.MaxModelYear())
	res := resolver.Resolve(d.snap, s, year)

	veh := vehicle.DecodedVehicle{
		VIN:       s,
		WMI:       s[:3],
		ModelYear: year,
	}
	w := res.WMI
	if res.Found {
		veh.WMI = w.Code + w.VisSuffix
		veh.Manufacturer = w.ManufacturerName
		veh.Country = w.Country
	}

	el := res.Elements
	veh.Make = el[snapshot.ElemMake]
	if veh.Make == "" {
		veh.Make = w.MakeName
	}
	veh.VehicleType = el[snapshot.ElemVehicleType]
	if veh.VehicleType == "" {
		veh.VehicleType = w.VehicleTypeName
	}
	veh.Model = el[snapshot.ElemModel]
	veh.Series = el[snapshot.ElemSeries]
	veh.Trim = el[snapshot.ElemTrim]
	veh.BodyClass = el[snapshot.ElemBodyClass]
	veh.PlantCity = el[snapshot.ElemPlantCity]
	veh.PlantState = el[snapshot.ElemPlantState]
	veh.PlantCountry = el[snapshot.ElemPlantCountry]
	veh.PlantCompany = el[snapshot.ElemPlantCompany]
	veh.ElectrificationLevel = el[snapshot.ElemElectrificationLevel]
	return veh, nil
}

var (
	defaultOnce    sync.Once
	defaultDecoder Decoder
	defaultErr     error
)

// Default returns the process-wide decoder backed by the bundled
// snapshot. The snapshot is loaded at most once, even under
// concurrent first use.
func Default() (Decoder, error) {
	defaultOnce.Do(func() {
		snap, err := snapio.New(config.New())
		if err != nil {
			defaultErr = &SnapshotError{Err: err}
			return
		}
		defaultDecoder = NewDecoder(snap)
	})
	return defaultDecoder, defaultErr
}

// Decode validates text (without check-digit correction) and resolves
// it against the bundled snapshot.
func Decode(text string) (vehicle.DecodedVehicle, error) {
	v, err := New(text)
	if err != nil {
		return vehicle.DecodedVehicle{}, err
	}
	return v.Decode()
}

// VpicVersion returns the vPIC version and release date of the
// bundled snapshot.
func VpicVersion() (version string, released string, err error) {
	d, err := Default()
	if err != nil {
		return "", "", err
	}
	version, released = d.VpicVersion()
	return version, released, nil
}
