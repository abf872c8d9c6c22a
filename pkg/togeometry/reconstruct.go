package togeometry

import (
	"fmt"

	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
	"github.com/chriswmackey/honeybee-3dm/pkg/rhino"
)

// outcome is the terminal state of reconstructing one planar brep.
type outcome int

const (
	// meshFallback degrades the surface to its tessellation. It is
	// the terminal state for every disqualifying condition: curved
	// edges, open boundaries, non-planar rings, holes touching the
	// boundary, or missing data.
	meshFallback outcome = iota
	// simpleFace emits one boundary ring with no holes.
	simpleFace
	// faceWithHoles emits a boundary ring plus hole rings.
	faceWithHoles
)

// planarBrepFaces reconstructs an open planar brep as one polygon with
// holes, falling back to the brep's tessellation when an exact
// reconstruction is not reliably derivable. Reconstruction failures are
// never surfaced as errors; the only error that can escape is a
// malformed tessellation mesh.
func (c *Converter) planarBrepFaces(b *rhino.Brep) ([]Face3D, error) {
	out, faces, err := c.reconstruct(b)
	if err != nil {
		return nil, err
	}
	if out == meshFallback {
		return c.brepMeshFaces(b)
	}
	return faces, nil
}

// reconstruct runs the reconstruction state machine. On meshFallback
// the returned faces are nil and the caller meshes the brep; the
// disqualifying condition has already been reported to the sink. The
// only possible error is a malformed tessellation on the already-simple
// shortcut.
func (c *Converter) reconstruct(b *rhino.Brep) (outcome, []Face3D, error) {
	// Any curved edge disqualifies the whole surface.
	for _, edge := range b.Edges {
		if !edge.IsLinear(c.Tolerance) {
			c.warn(DiagCurvedEdges, "surface has curved edges, it will be meshed")
			return meshFallback, nil, nil
		}
	}

	segments := make([]geometry.Segment, 0, len(b.Edges))
	for _, edge := range b.Edges {
		segments = append(segments, edge.Chord())
	}
	polylines := geometry.JoinSegments(segments, c.Tolerance)
	if len(polylines) == 0 {
		c.warn(DiagOpenBoundary, "surface has no boundary edges, it will be meshed")
		return meshFallback, nil, nil
	}
	for _, pl := range polylines {
		if !pl.IsClosed(c.Tolerance) {
			c.warn(DiagOpenBoundary, "surface boundary does not close, it will be meshed")
			return meshFallback, nil, nil
		}
	}

	boundary, holes := separate(polylines)

	// The first face's tessellation holds the surface vertices.
	if len(b.Faces) == 0 || b.Faces[0] == nil {
		c.warn(DiagOpenBoundary, "surface carries no tessellation, it will be meshed")
		return meshFallback, nil, nil
	}
	mesh := b.Faces[0]

	if len(holes) == 0 {
		// A 3- or 4-vertex tessellation is already the simple
		// polygon; emit it directly instead of building a ring.
		if n := mesh.VertexCount(); n == 3 || n == 4 {
			faces, err := MeshFaces(mesh)
			if err != nil {
				return simpleFace, nil, err
			}
			return simpleFace, faces, nil
		}
		boundaryPts := geometry.RemoveDuplicates(boundary, c.Tolerance)
		if len(boundaryPts) < 3 {
			c.warn(DiagDegenerateRing, "surface boundary degenerates below three vertices, it will be meshed")
			return meshFallback, nil, nil
		}
		if !geometry.Planar(boundaryPts, c.Tolerance) {
			c.warn(DiagNonPlanar, "surface boundary is not planar, it will be meshed")
			return meshFallback, nil, nil
		}
		return simpleFace, []Face3D{{Boundary: boundaryPts}}, nil
	}

	boundaryPts := geometry.RemoveDuplicates(boundary, c.Tolerance)
	if len(boundaryPts) < 3 {
		c.warn(DiagDegenerateRing, "surface boundary degenerates below three vertices, it will be meshed")
		return meshFallback, nil, nil
	}
	holePts := make([][]geometry.Point3, 0, len(holes))
	for _, hole := range holes {
		ring := geometry.RemoveDuplicates(hole, c.Tolerance)
		if len(ring) < 3 {
			c.warn(DiagDegenerateRing, "surface hole degenerates below three vertices, it will be meshed")
			return meshFallback, nil, nil
		}
		holePts = append(holePts, ring)
	}
	if touchesBoundary(boundaryPts, holePts, c.Tolerance) {
		c.warn(DiagHoleTouchesBoundary, "surface has holes that touch the boundary, it will be meshed")
		return meshFallback, nil, nil
	}
	return faceWithHoles, []Face3D{{Boundary: boundaryPts, Holes: holePts}}, nil
}

// brepMeshFaces extracts the tessellation of every brep face,
// concatenated in face order. This is both the solid path and the
// fallback for disqualified planar surfaces.
func (c *Converter) brepMeshFaces(b *rhino.Brep) ([]Face3D, error) {
	var faces []Face3D
	for i, mesh := range b.Faces {
		if mesh == nil {
			continue
		}
		extracted, err := MeshFaces(mesh)
		if err != nil {
			return nil, fmt.Errorf("brep face %d: %w", i, err)
		}
		faces = append(faces, extracted...)
	}
	return faces, nil
}
