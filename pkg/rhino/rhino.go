// Package rhino models the geometry a 3dm reader hands to the
// converter: breps with pre-tessellated face meshes and
// linearity-classified edges, swept extrusions, and render meshes.
// The package is pure data; reading file bytes and tessellating
// surfaces are the upstream kernel's job.
package rhino

import (
	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
)

// Geometry is the closed set of object kinds the converter understands.
// Exactly four types implement it: *Brep, *Extrusion, *Mesh and
// *Unsupported.
type Geometry interface {
	isGeometry()
}

// Edge is a brep boundary edge. The kernel supplies the chord endpoints
// and the maximum deviation of the underlying curve from that chord;
// linearity is a tolerance test over the stored deviation, never a
// curve re-derivation.
type Edge struct {
	Start     geometry.Point3
	End       geometry.Point3
	Deviation float64
}

// IsLinear reports whether the edge is straight within tolerance.
func (e Edge) IsLinear(tolerance float64) bool {
	return e.Deviation <= tolerance
}

// Chord returns the straight segment between the edge endpoints.
func (e Edge) Chord() geometry.Segment {
	return geometry.Segment{Start: e.Start, End: e.End}
}

// Brep is a boundary representation: its edge list plus one render mesh
// per face, tessellated by the kernel. Solid marks a closed brep.
type Brep struct {
	Solid bool
	Edges []Edge
	Faces []*Mesh
}

// Extrusion is a swept profile solid. The kernel supplies its render
// mesh; the parametric form is not exposed to the converter.
type Extrusion struct {
	Mesh *Mesh
}

// Unsupported stands in for object kinds with no conversion path, such
// as curves, point clouds or annotations. TypeName is the source
// object's type for diagnostics.
type Unsupported struct {
	TypeName string
}

func (*Brep) isGeometry() {}

func (*Extrusion) isGeometry() {}

func (*Mesh) isGeometry() {}

func (*Unsupported) isGeometry() {}
