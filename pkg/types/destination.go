package types

// Destination is the placement target for one scaffold source file. It is a
// tagged variant over "a path string" and "explicitly disabled": a package
// may declare a source key with a false value to suppress a mapping a
// lower-precedence package contributed for the same key.
type Destination struct {
	path     string
	disabled bool
}

// NewDestination returns an enabled destination for the given path.
func NewDestination(path string) Destination {
	return Destination{path: path}
}

// DisabledDestination returns the destination sentinel that suppresses a
// source key entirely.
func DisabledDestination() Destination {
	return Destination{disabled: true}
}

// Disabled reports whether this destination suppresses its source key.
func (d Destination) Disabled() bool {
	return d.disabled
}

// Path returns the destination path. It is only meaningful when the
// destination is not disabled.
func (d Destination) Path() string {
	return d.path
}

// DestinationFromValue converts a raw mapping value, as decoded from a
// package descriptor, into a Destination. The wire shape is either a path
// string or the boolean false. Any other value is rejected.
func DestinationFromValue(value interface{}) (Destination, bool) {
	switch v := value.(type) {
	case string:
		return NewDestination(v), true
	case bool:
		if !v {
			return DisabledDestination(), true
		}
		return Destination{}, false
	default:
		return Destination{}, false
	}
}

// FileMapping maps a source path relative to the owning package's install
// path to its destination.
type FileMapping map[string]Destination

// ResolvedLocations maps a symbolic location name to an absolute, existing
// directory path. Built once per run and read-only afterwards.
type ResolvedLocations map[string]string

// ConsolidatedMapping is the deep-merged raw file mapping of every allowed
// package: package name -> source relative path -> destination value. Values
// stay in wire shape (string or false) until interpolation and execution
// normalize them through DestinationFromValue.
type ConsolidatedMapping map[string]interface{}
