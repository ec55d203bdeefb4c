package snapshot

import "sort"

// WMI is a World Manufacturer Identifier record with its reference
// names denormalized for lookup.
type WMI struct {
	// Code is the three-character WMI from VIN positions 1-3.
	Code string

	// VisSuffix extends the Code with VIN positions 12-14 for
	// specialized manufacturers. Empty for mass-market WMIs.
	VisSuffix string

	ManufacturerName string
	MakeName         string
	VehicleTypeName  string
	Country          string
	CreatedOn        string
	UpdatedOn        string
}

// Pattern is one decoding rule: when KeyPattern matches the VIN
// descriptor section and the model year is in scope, the rule assigns
// Value to the element identified by ElementID.
type Pattern struct {
	ID         int
	WMI        string
	KeyPattern string
	ElementID  int
	Value      string

	// YearFrom and YearTo bound the model-year scope. Zero means the
	// bound is open.
	YearFrom int
	YearTo   int
}

// Wildcards returns the number of single-position wildcards in the
// key pattern.
func (p Pattern) Wildcards() int {
	var n int
	for i := 0; i < len(p.KeyPattern); i++ {
		if p.KeyPattern[i] == '*' {
			n++
		}
	}
	return n
}

// YearSpan returns the width of the pattern's model-year scope.
// Open-ended scopes sort after every bounded scope.
func (p Pattern) YearSpan() int {
	const open = 1 << 20
	if p.YearFrom == 0 || p.YearTo == 0 {
		return open
	}
	return p.YearTo - p.YearFrom
}

// Element is a vPIC decoding element.
type Element struct {
	ID    int
	Name  string
	Group string
}

// Order sorts patterns into evaluation order: more specific keys first
// (fewer wildcards), then longer keys, then narrower year scopes, then
// ascending id. The store applies it once at load time so resolution
// never re-derives precedence.
func Order(ps []Pattern) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if wa, wb := a.Wildcards(), b.Wildcards(); wa != wb {
			return wa < wb
		}
		if len(a.KeyPattern) != len(b.KeyPattern) {
			return len(a.KeyPattern) > len(b.KeyPattern)
		}
		if sa, sb := a.YearSpan(), b.YearSpan(); sa != sb {
			return sa < sb
		}
		return a.ID < b.ID
	})
}
