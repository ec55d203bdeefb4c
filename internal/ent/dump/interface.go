package dump

// Dumper is the interface that wraps the Dump method.
type Dumper interface {
	// Dump exports vPIC reference tables from a MySQL mirror to CSV.
	Dump() error
}
