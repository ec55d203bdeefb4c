package vin

import "github.com/davidpeckham/vin/pkg/ent/vehicle"

// Decoder resolves validated VINs against a vPIC reference snapshot.
// Implementations are safe for concurrent use.
type Decoder interface {
	// Decode returns the vehicle described by the VIN. Fields the
	// snapshot cannot resolve are empty strings; that is not an error.
	Decode(v *VIN) (vehicle.DecodedVehicle, error)

	// VpicVersion returns the vPIC version and release date of the
	// decoder's snapshot.
	VpicVersion() (version string, released string)
}
