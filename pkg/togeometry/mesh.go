package togeometry

import (
	"fmt"
	"image/color"

	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
	"github.com/chriswmackey/honeybee-3dm/pkg/rhino"
)

// MeshFaces converts each face record of a render mesh into a Face3D
// with exactly as many vertices as the record indexes. A face with an
// arity other than 3 or 4, or with an index outside the vertex array,
// yields a *MalformedMeshError.
func MeshFaces(m *rhino.Mesh) ([]Face3D, error) {
	faces := make([]Face3D, 0, len(m.Faces))
	for i, face := range m.Faces {
		if len(face) != 3 && len(face) != 4 {
			return nil, &MalformedMeshError{
				Face:   i,
				Reason: fmt.Sprintf("has %d vertices, want 3 or 4", len(face)),
			}
		}
		verts := make([]geometry.Point3, 0, len(face))
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, &MalformedMeshError{
					Face:   i,
					Reason: fmt.Sprintf("vertex index %d outside [0,%d)", idx, len(m.Vertices)),
				}
			}
			verts = append(verts, m.Vertices[idx])
		}
		faces = append(faces, Face3D{Boundary: verts})
	}
	return faces, nil
}

// MeshColors returns the mesh colors, or nil if the mesh carries none.
// With colorByFace each face contributes the color of its first vertex;
// otherwise the per-vertex colors are returned in vertex order. The
// colors pass through untouched, there is no averaging.
func MeshColors(m *rhino.Mesh, colorByFace bool) []color.NRGBA {
	if !m.HasColors() {
		return nil
	}
	if !colorByFace {
		out := make([]color.NRGBA, len(m.Colors))
		copy(out, m.Colors)
		return out
	}
	// One color per face, taken from the face's first vertex. The
	// face index contract is enforced by MeshFaces, so the lookup is
	// unconditional and the result always pairs with the face list.
	out := make([]color.NRGBA, 0, len(m.Faces))
	for _, face := range m.Faces {
		out = append(out, m.Colors[face[0]])
	}
	return out
}
