// Package resolver selects the WMI for a VIN and evaluates the
// snapshot's pattern rules against its descriptor section.
package resolver

import (
	"github.com/davidpeckham/vin/pkg/ent/snapshot"
	"github.com/davidpeckham/vin/pkg/ent/vehicle"
)

// keyOffset is the zero-based VIN index of the first key-pattern
// position (VIN position 4).
const keyOffset = 3

// Result holds the selected WMI and the element values the matching
// patterns assigned.
type Result struct {
	WMI      snapshot.WMI
	Found    bool
	Elements map[string]string
}

// Resolve looks up the longest-matching WMI for the VIN and applies
// the snapshot's pattern rules in their precomputed evaluation order.
// The first matching rule wins for each element.
func Resolve(snap snapshot.Snapshot, vin string, modelYear int) Result {
	res := Result{Elements: make(map[string]string)}

	code := vin[:3]
	res.WMI, res.Found = SelectWMI(snap, code, vin[11:14])

	for _, p := range snap.Patterns(code) {
		if !yearInScope(p, modelYear) {
			continue
		}
		if !MatchKey(p.KeyPattern, vin) {
			continue
		}
		name := snap.ElementName(p.ElementID)
		if name == "" {
			continue
		}
		if _, ok := res.Elements[name]; !ok {
			res.Elements[name] = p.Value
		}
	}
	return res
}

// SelectWMI prefers a specialized six-character WMI whose suffix
// matches VIN positions 12-14 over the mass-market three-character
// record.
func SelectWMI(snap snapshot.Snapshot, code, visSuffix string) (snapshot.WMI, bool) {
	if w, ok := snap.WMI6(code, visSuffix); ok {
		return w, true
	}
	if w, ok := snap.WMI3(code); ok {
		return w, true
	}
	return snapshot.WMI{}, false
}

// MatchKey reports whether the key pattern matches the VIN starting at
// position 4. A `*` matches any single position.
func MatchKey(keyPattern, vin string) bool {
	if len(keyPattern) == 0 || keyOffset+len(keyPattern) > len(vin) {
		return false
	}
	for i := 0; i < len(keyPattern); i++ {
		if keyPattern[i] == '*' {
			continue
		}
		if keyPattern[i] != vin[keyOffset+i] {
			return false
		}
	}
	return true
}

// yearInScope applies the pattern's model-year bounds. An unknown
// model year admits only rules with no bounds at all.
func yearInScope(p snapshot.Pattern, modelYear int) bool {
	if modelYear == vehicle.YearUnknown {
		return p.YearFrom == 0 && p.YearTo == 0
	}
	if p.YearFrom != 0 && modelYear < p.YearFrom {
		return false
	}
	if p.YearTo != 0 && modelYear > p.YearTo {
		return false
	}
	return true
}
