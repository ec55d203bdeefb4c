package build

// Builder is the interface that wraps the Build method.
type Builder interface {
	// Build assembles a SQLite snapshot from vPIC CSV extracts.
	Build() error
}
