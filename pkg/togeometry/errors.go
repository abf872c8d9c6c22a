package togeometry

import "fmt"

// UnsupportedGeometryError reports an object kind with no conversion
// path. It is returned only under the Raise policy.
type UnsupportedGeometryError struct {
	TypeName string
}

func (e *UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("unsupported object type: %s", e.TypeName)
}

// MalformedMeshError reports a mesh face record with an arity other
// than 3 or 4, or a vertex index outside the vertex array. It indicates
// corrupt upstream data and is always fatal; the converter never
// degrades it to a fallback.
type MalformedMeshError struct {
	Face   int // index of the offending face record
	Reason string
}

func (e *MalformedMeshError) Error() string {
	return fmt.Sprintf("malformed mesh: face %d: %s", e.Face, e.Reason)
}
