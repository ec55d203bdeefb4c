// Package vin validates and decodes 17-character Vehicle
// Identification Numbers as defined by 49 CFR Part 565 and resolves
// them against a bundled snapshot of the NHTSA vPIC database.
//
//	v, err := vin.New("4T1BE46K19U856421")
//	if err != nil { ... }
//	fmt.Println(v.Manufacturer(), v.ModelYear())
package vin

import (
	"sync"

	"github.com/davidpeckham/vin/internal/str"
	"github.com/davidpeckham/vin/pkg/ent/vehicle"
)

// VIN is a validated Vehicle Identification Number. The value is
// immutable; decoding against the vPIC snapshot happens once, on the
// first accessor call, and is memoized.
//
//	                                    model year
//	                                        |
//	               WMI          check digit | plant
//	             |-----|                 |  |  |  |--- serial ----|
//	  Position   1  2  3  4  5  6  7  8  9  10 11 12 13 14 15 16 17
//	                      |-----------|     |---------------------|
//	                           VDS                    VIS
//
// Mass-market manufacturers are assigned a three-character World
// Manufacturer Identifier; specialized manufacturers get a
// six-character WMI spread over positions 1-3 and 12-14.
type VIN struct {
	vin string

	once      sync.Once
	vehicle   vehicle.DecodedVehicle
	decodeErr error
}

// Option type allows to change settings for New.
type Option func(*settings)

type settings struct {
	correctCheckDigit bool
}

// OptCorrectCheckDigit makes New replace a wrong check digit with the
// computed one instead of failing.
func OptCorrectCheckDigit(b bool) Option {
	return func(s *settings) {
		s.correctCheckDigit = b
	}
}

// New validates a 17-character VIN. ASCII letters are uppercased
// before validation. The returned VIN carries the corrected check
// digit when correction is enabled.
func New(text string, opts ...Option) (*VIN, error) {
	var set settings
	for _, opt := range opts {
		opt(&set)
	}

	s := str.UpperASCII(text)
	if len(s) != Length {
		return nil, &InvalidLengthError{Length: len(s)}
	}
	for i := 0; i < Length; i++ {
		if _, ok := characterValues[s[i]]; !ok {
			return nil, &InvalidCharacterError{Position: i + 1, Char: rune(s[i])}
		}
	}
	if expected := checkDigit(s); s[checkPos] != expected {
		if !set.correctCheckDigit {
			return nil, &CheckDigitError{Expected: expected, Got: s[checkPos]}
		}
		s = s[:checkPos] + string(expected) + s[checkPos+1:]
	}
	return &VIN{vin: s}, nil
}

// String returns the canonical 17-character VIN.
func (v *VIN) String() string { return v.vin }

// Wmi returns the World Manufacturer Identifier: six characters when
// position 3 is '9' (specialized manufacturers), three otherwise.
func (v *VIN) Wmi() string {
	if v.vin[2] == '9' {
		return v.vin[:3] + v.vin[11:14]
	}
	return v.vin[:3]
}

// Vds returns the Vehicle Description Section, positions 4-8.
func (v *VIN) Vds() string { return v.vin[3:8] }

// Vis returns the Vehicle Identification Section, positions 10-17.
func (v *VIN) Vis() string { return v.vin[9:] }

// CheckDigit returns the character at position 9.
func (v *VIN) CheckDigit() byte { return v.vin[checkPos] }

// Descriptor returns the vPIC descriptor key for the VIN: the check
// digit masked, truncated after position 14 for specialized
// manufacturers and after position 11 otherwise.
func (v *VIN) Descriptor() string {
	d := v.vin[:checkPos] + "*" + v.vin[checkPos+1:]
	if v.vin[2] == '9' {
		return d[:14]
	}
	return d[:11]
}

// Decode resolves the VIN against the vPIC snapshot of the default
// decoder. The result is memoized; the only possible error is an
// unavailable snapshot.
func (v *VIN) Decode() (vehicle.DecodedVehicle, error) {
	v.once.Do(func() {
		d, err := Default()
		if err != nil {
			v.vehicle = vehicle.DecodedVehicle{VIN: v.vin, WMI: v.vin[:3]}
			v.decodeErr = err
			return
		}
		v.vehicle, v.decodeErr = d.Decode(v)
	})
	return v.vehicle, v.decodeErr
}

func (v *VIN) decode() vehicle.DecodedVehicle {
	res, _ := v.Decode()
	return res
}

// Manufacturer returns the name of the vehicle manufacturer.
func (v *VIN) Manufacturer() string { return v.decode().Manufacturer }

// Make returns the vehicle make, such as "Honda".
func (v *VIN) Make() string { return v.decode().Make }

// Model returns the vehicle model, such as "Pilot".
func (v *VIN) Model() string { return v.decode().Model }

// Series returns the vehicle series.
func (v *VIN) Series() string { return v.decode().Series }

// Trim returns the vehicle trim level.
func (v *VIN) Trim() string { return v.decode().Trim }

// BodyClass returns the vPIC body class.
func (v *VIN) BodyClass() string { return v.decode().BodyClass }

// VehicleType returns the vPIC vehicle type.
func (v *VIN) VehicleType() string { return v.decode().VehicleType }

// ModelYear returns the vehicle model year, or YearUnknown when the
// year character is `0` or unrecognized.
func (v *VIN) ModelYear() int { return v.decode().ModelYear }

// Country returns the country where the manufacturer is registered.
func (v *VIN) Country() string { return v.decode().Country }

// PlantCity returns the city of the assembly plant.
func (v *VIN) PlantCity() string { return v.decode().PlantCity }

// PlantState returns the state or province of the assembly plant.
func (v *VIN) PlantState() string { return v.decode().PlantState }

// PlantCountry returns the country of the assembly plant.
func (v *VIN) PlantCountry() string { return v.decode().PlantCountry }

// PlantCompany returns the company name of the assembly plant.
func (v *VIN) PlantCompany() string { return v.decode().PlantCompany }

// ElectrificationLevel returns the vPIC electrification level.
func (v *VIN) ElectrificationLevel() string {
	return v.decode().ElectrificationLevel
}

// Description returns "{year} {make} {model} {series} {trim}" with
// empty parts elided.
func (v *VIN) Description() string { return v.decode().Description() }
