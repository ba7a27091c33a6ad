// Package asset describes the parts of a decoded Unreal asset that the
// analysis packages consume. Parsing the container itself happens
// elsewhere; callers hand these types in already populated.
package asset

import (
	"fmt"
)

// PackageIndex references an object in the asset's import or export table.
// Positive values are exports (index-1), negative values are imports
// (-index-1) and zero is null.
type PackageIndex int32

// IsNull reports whether the index references nothing.
func (p PackageIndex) IsNull() bool { return p == 0 }

// IsImport reports whether the index references the import table.
func (p PackageIndex) IsImport() bool { return p < 0 }

// IsExport reports whether the index references the export table.
func (p PackageIndex) IsExport() bool { return p > 0 }

// String returns a stable label used when no resolver can name the object.
func (p PackageIndex) String() string {
	switch {
	case p.IsExport():
		return fmt.Sprintf("export#%d", int32(p)-1)
	case p.IsImport():
		return fmt.Sprintf("import#%d", -int32(p)-1)
	default:
		return "null"
	}
}

// Version is the asset-level object format version counter. Version-gated
// fields in serialized data branch on it.
type Version int32

// NameTable resolves serialized FName pairs.
type NameTable interface {
	// Name returns the display string for the name at index with the given
	// instance number. ok is false when index is out of range.
	Name(index, number int32) (name string, ok bool)
}

// Resolver maps a package index to a human-readable object name.
type Resolver interface {
	Resolve(ref PackageIndex) (name string, ok bool)
}

// Names is a NameTable backed by the asset's name map.
type Names []string

// Name implements NameTable. Non-zero instance numbers are appended the
// way the engine prints them: number 1 becomes "_0".
func (n Names) Name(index, number int32) (string, bool) {
	if index < 0 || int(index) >= len(n) {
		return "", false
	}
	if number == 0 {
		return n[index], true
	}
	return fmt.Sprintf("%s_%d", n[index], number-1), true
}

// MapResolver is a Resolver backed by a map.
type MapResolver map[PackageIndex]string

// Resolve implements Resolver.
func (m MapResolver) Resolve(ref PackageIndex) (string, bool) {
	name, ok := m[ref]
	return name, ok
}

// ResolveName returns the resolver's name for ref, or the index's own
// label when r is nil or cannot name it.
func ResolveName(r Resolver, ref PackageIndex) string {
	if ref.IsNull() {
		return "null"
	}
	if r != nil {
		if name, ok := r.Resolve(ref); ok && name != "" {
			return name
		}
	}
	return ref.String()
}

// Node is one graph node as stored in the asset: its export reference,
// object name, class and the trailing bytes that hold its pins.
type Node struct {
	Ref    PackageIndex
	Name   string
	Class  string
	Extras []byte
}

// Graph is an editor graph: an ordered set of nodes.
type Graph struct {
	Name  string
	Nodes []Node
}
