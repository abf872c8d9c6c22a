package rhino

import (
	"image/color"

	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
)

// MeshFace indexes 3 or 4 vertices of the owning mesh. The arity is
// fixed when the face record is built and is never mixed within one
// record.
type MeshFace []int

// IsQuad reports whether the face has four vertices.
func (f MeshFace) IsQuad() bool {
	return len(f) == 4
}

// Mesh is a render mesh: a shared vertex array with triangle or quad
// faces and optional per-vertex colors.
type Mesh struct {
	Vertices []geometry.Point3
	Faces    []MeshFace
	Colors   []color.NRGBA // one per vertex when present
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// HasColors reports whether the mesh carries per-vertex colors.
func (m *Mesh) HasColors() bool {
	return len(m.Colors) > 0
}
