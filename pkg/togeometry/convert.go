// Package togeometry converts Rhino-style geometry into planar Face3D
// polygons: one boundary ring with zero or more hole rings per face,
// falling back to the tessellated mesh whenever an exact planar
// reconstruction is not reliably derivable.
package togeometry

import (
	"fmt"

	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
	"github.com/chriswmackey/honeybee-3dm/pkg/rhino"
)

// Face3D is one planar polygon of a conversion result: a boundary ring
// and zero or more hole rings. Faces extracted from meshes carry the
// face vertices as the boundary and never have holes.
type Face3D struct {
	Boundary []geometry.Point3
	Holes    [][]geometry.Point3
}

// UnsupportedPolicy selects how Convert treats object kinds with no
// conversion path.
type UnsupportedPolicy int

const (
	// Raise fails the conversion with an UnsupportedGeometryError.
	Raise UnsupportedPolicy = iota
	// WarnAndSkip emits a diagnostic and returns an empty result.
	WarnAndSkip
)

// Converter turns rhino geometry into Face3D polygons. Each Convert
// call is independent; a Converter holds no state between calls and a
// single instance may be shared across goroutines.
type Converter struct {
	// Tolerance is the distance within which two points, or a curve
	// and its chord, are treated as identical. It applies to the
	// whole conversion; there are no per-entity overrides.
	Tolerance float64

	// OnUnsupported selects the policy for unknown object kinds.
	OnUnsupported UnsupportedPolicy

	// Diags receives non-fatal conversion diagnostics. When nil,
	// diagnostics go to the standard logger.
	Diags DiagnosticSink
}

// New returns a Converter with the given tolerance, the Raise policy
// and log-backed diagnostics.
func New(tolerance float64) *Converter {
	return &Converter{
		Tolerance:     tolerance,
		OnUnsupported: Raise,
		Diags:         logSink{},
	}
}

// Convert converts one geometry object into its Face3D polygons.
//
// Solid breps and extrusions are always meshed; open breps go through
// planar reconstruction per surface; meshes are extracted directly.
// Geometric edge cases degrade to meshed output with a diagnostic
// rather than failing: only an unsupported object kind (under Raise)
// or a malformed mesh is returned as an error.
func (c *Converter) Convert(obj rhino.Geometry) ([]Face3D, error) {
	switch g := obj.(type) {
	case *rhino.Brep:
		if g.Solid {
			return c.brepMeshFaces(g)
		}
		return c.planarBrepFaces(g)

	case *rhino.Extrusion:
		if g.Mesh == nil {
			c.warn(DiagOpenBoundary, "extrusion carries no render mesh, it will be skipped")
			return nil, nil
		}
		return MeshFaces(g.Mesh)

	case *rhino.Mesh:
		return MeshFaces(g)

	case *rhino.Unsupported:
		return c.unsupported(g.TypeName)

	default:
		return c.unsupported(fmt.Sprintf("%T", obj))
	}
}

// unsupported applies the configured policy to an object kind with no
// conversion path.
func (c *Converter) unsupported(typeName string) ([]Face3D, error) {
	if c.OnUnsupported == Raise {
		return nil, &UnsupportedGeometryError{TypeName: typeName}
	}
	c.warn(DiagUnsupportedType, fmt.Sprintf("unsupported object type %s will be skipped", typeName))
	return nil, nil
}

// warn sends a diagnostic to the configured sink.
func (c *Converter) warn(code, message string) {
	sink := c.Diags
	if sink == nil {
		sink = logSink{}
	}
	sink.Warn(Diagnostic{Code: code, Message: message})
}
