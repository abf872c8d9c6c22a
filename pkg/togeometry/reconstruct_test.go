package togeometry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
	"github.com/chriswmackey/honeybee-3dm/pkg/rhino"
	"github.com/chriswmackey/honeybee-3dm/pkg/togeometry"
)

const tol = 0.001

func pt(x, y, z float64) geometry.Point3 {
	return geometry.Point3{X: x, Y: y, Z: z}
}

// newConverter returns a converter wired to a collecting diagnostic log.
func newConverter() (*togeometry.Converter, *togeometry.DiagnosticLog) {
	diags := &togeometry.DiagnosticLog{}
	c := togeometry.New(tol)
	c.Diags = diags
	return c, diags
}

// ringEdges returns straight edges tracing the given points in order,
// closing back to the first point.
func ringEdges(points ...geometry.Point3) []rhino.Edge {
	edges := make([]rhino.Edge, 0, len(points))
	for i, p := range points {
		next := points[(i+1)%len(points)]
		edges = append(edges, rhino.Edge{Start: p, End: next})
	}
	return edges
}

// quadTessellation returns a 4-vertex mesh with a single quad face.
func quadTessellation(a, b, c, d geometry.Point3) *rhino.Mesh {
	return &rhino.Mesh{
		Vertices: []geometry.Point3{a, b, c, d},
		Faces:    []rhino.MeshFace{{0, 1, 2, 3}},
	}
}

// fanTessellation returns a mesh over the given ring made of triangles
// fanned from the first vertex.
func fanTessellation(points ...geometry.Point3) *rhino.Mesh {
	m := &rhino.Mesh{Vertices: points}
	for i := 1; i < len(points)-1; i++ {
		m.Faces = append(m.Faces, rhino.MeshFace{0, i, i + 1})
	}
	return m
}

// unitSquare is the 1x1 square at the origin used across scenarios.
var unitSquare = []geometry.Point3{
	pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0),
}

func TestConvert_SimpleQuadTakesMeshShortcut(t *testing.T) {
	c, diags := newConverter()
	brep := &rhino.Brep{
		Edges: ringEdges(unitSquare...),
		Faces: []*rhino.Mesh{quadTessellation(unitSquare[0], unitSquare[1], unitSquare[2], unitSquare[3])},
	}

	faces, err := c.Convert(brep)
	require.NoError(t, err)
	require.Len(t, faces, 1)

	// The 4-vertex tessellation is emitted directly as one quad.
	assert.Len(t, faces[0].Boundary, 4)
	assert.Empty(t, faces[0].Holes)
	assert.Empty(t, diags.Diagnostics)
}

func TestConvert_PentagonBecomesPlanarFace(t *testing.T) {
	pentagon := []geometry.Point3{
		pt(0, 0, 0), pt(4, 0, 0), pt(5, 3, 0), pt(2, 5, 0), pt(-1, 3, 0),
	}
	c, diags := newConverter()
	brep := &rhino.Brep{
		Edges: ringEdges(pentagon...),
		Faces: []*rhino.Mesh{fanTessellation(pentagon...)},
	}

	faces, err := c.Convert(brep)
	require.NoError(t, err)
	require.Len(t, faces, 1)

	assert.Len(t, faces[0].Boundary, 5)
	assert.ElementsMatch(t, pentagon, faces[0].Boundary)
	assert.Empty(t, faces[0].Holes)
	assert.Empty(t, diags.Diagnostics)
}

func TestConvert_InteriorHoleBecomesFaceWithHole(t *testing.T) {
	outer := []geometry.Point3{
		pt(0, 0, 0), pt(10, 0, 0), pt(10, 10, 0), pt(0, 10, 0),
	}
	hole := []geometry.Point3{
		pt(4, 4, 0), pt(6, 4, 0), pt(6, 6, 0), pt(4, 6, 0),
	}
	// Interleave outer and hole edges so assembly has to regroup them.
	outerEdges := ringEdges(outer...)
	holeEdges := ringEdges(hole...)
	var edges []rhino.Edge
	for i := range outerEdges {
		edges = append(edges, outerEdges[i], holeEdges[i])
	}

	c, diags := newConverter()
	brep := &rhino.Brep{
		Edges: edges,
		Faces: []*rhino.Mesh{fanTessellation(outer...)},
	}

	faces, err := c.Convert(brep)
	require.NoError(t, err)
	require.Len(t, faces, 1)

	assert.ElementsMatch(t, outer, faces[0].Boundary)
	require.Len(t, faces[0].Holes, 1)
	assert.ElementsMatch(t, hole, faces[0].Holes[0])
	assert.Empty(t, diags.Diagnostics)
}

func TestConvert_HoleTouchingBoundaryFallsBackToMesh(t *testing.T) {
	outer := []geometry.Point3{
		pt(0, 0, 0), pt(10, 0, 0), pt(10, 10, 0), pt(0, 10, 0),
	}
	// The hole shares the boundary corner at the origin.
	hole := []geometry.Point3{
		pt(0, 0, 0), pt(2, 0.5, 0), pt(2, 2, 0), pt(0.5, 2, 0),
	}
	tessellation := &rhino.Mesh{
		Vertices: outer,
		Faces:    []rhino.MeshFace{{0, 1, 2}, {2, 3, 0}},
	}

	c, diags := newConverter()
	brep := &rhino.Brep{
		Edges: append(ringEdges(outer...), ringEdges(hole...)...),
		Faces: []*rhino.Mesh{tessellation},
	}

	faces, err := c.Convert(brep)
	require.NoError(t, err)

	// Mesh-derived triangles, never a face with holes.
	require.Len(t, faces, 2)
	for _, f := range faces {
		assert.Len(t, f.Boundary, 3)
		assert.Empty(t, f.Holes)
	}
	assert.True(t, diags.Has(togeometry.DiagHoleTouchesBoundary))
}

func TestConvert_CurvedEdgeFallsBackToMesh(t *testing.T) {
	edges := ringEdges(unitSquare...)
	// One edge is an arc: its chord deviation exceeds the tolerance.
	edges[2].Deviation = 0.05

	tessellation := &rhino.Mesh{
		Vertices: unitSquare,
		Faces:    []rhino.MeshFace{{0, 1, 2}, {2, 3, 0}},
	}

	c, diags := newConverter()
	brep := &rhino.Brep{Edges: edges, Faces: []*rhino.Mesh{tessellation}}

	faces, err := c.Convert(brep)
	require.NoError(t, err)
	require.Len(t, faces, 2)
	assert.True(t, diags.Has(togeometry.DiagCurvedEdges))
}

func TestConvert_OpenBoundaryFallsBackToMesh(t *testing.T) {
	// Only three sides of the square: the boundary never closes.
	edges := ringEdges(unitSquare...)[:3]
	tessellation := &rhino.Mesh{
		Vertices: unitSquare,
		Faces:    []rhino.MeshFace{{0, 1, 2}, {2, 3, 0}},
	}

	c, diags := newConverter()
	brep := &rhino.Brep{Edges: edges, Faces: []*rhino.Mesh{tessellation}}

	faces, err := c.Convert(brep)
	require.NoError(t, err)
	require.Len(t, faces, 2)
	assert.True(t, diags.Has(togeometry.DiagOpenBoundary))
}

func TestConvert_NonPlanarBoundaryFallsBackToMesh(t *testing.T) {
	warped := []geometry.Point3{
		pt(0, 0, 0), pt(4, 0, 0), pt(4, 4, 0), pt(2, 5, 1), pt(0, 4, 0),
	}
	c, diags := newConverter()
	brep := &rhino.Brep{
		Edges: ringEdges(warped...),
		Faces: []*rhino.Mesh{fanTessellation(warped...)},
	}

	faces, err := c.Convert(brep)
	require.NoError(t, err)

	// The fan fallback yields one triangle per interior vertex.
	require.Len(t, faces, 3)
	for _, f := range faces {
		assert.Len(t, f.Boundary, 3)
	}
	assert.True(t, diags.Has(togeometry.DiagNonPlanar))
}

func TestConvert_SliverBoundaryFallsBackToMesh(t *testing.T) {
	// Two overlapping edges p->q and q->p join into the chain
	// [p,q,p], which closes but dedups to only two ring vertices.
	p := pt(0, 0, 0)
	q := pt(5, 0, 0)
	tessellation := fanTessellation(
		pt(0, 0, 0), pt(5, 0, 0), pt(5, 1, 0), pt(2, 2, 0), pt(0, 1, 0),
	)

	c, diags := newConverter()
	brep := &rhino.Brep{
		Edges: []rhino.Edge{{Start: p, End: q}, {Start: q, End: p}},
		Faces: []*rhino.Mesh{tessellation},
	}

	faces, err := c.Convert(brep)
	require.NoError(t, err)

	// Mesh-derived triangles, never a two-vertex face.
	require.Len(t, faces, 3)
	for _, f := range faces {
		assert.Len(t, f.Boundary, 3)
		assert.Empty(t, f.Holes)
	}
	assert.True(t, diags.Has(togeometry.DiagDegenerateRing))
}

func TestConvert_SliverHoleFallsBackToMesh(t *testing.T) {
	outer := []geometry.Point3{
		pt(0, 0, 0), pt(10, 0, 0), pt(10, 10, 0), pt(0, 10, 0),
	}
	// The "hole" is a zero-area sliver of two overlapping edges.
	h0 := pt(4, 5, 0)
	h1 := pt(6, 5, 0)
	edges := append(ringEdges(outer...),
		rhino.Edge{Start: h0, End: h1}, rhino.Edge{Start: h1, End: h0})
	tessellation := &rhino.Mesh{
		Vertices: outer,
		Faces:    []rhino.MeshFace{{0, 1, 2}, {2, 3, 0}},
	}

	c, diags := newConverter()
	brep := &rhino.Brep{Edges: edges, Faces: []*rhino.Mesh{tessellation}}

	faces, err := c.Convert(brep)
	require.NoError(t, err)
	require.Len(t, faces, 2)
	for _, f := range faces {
		assert.Len(t, f.Boundary, 3)
		assert.Empty(t, f.Holes)
	}
	assert.True(t, diags.Has(togeometry.DiagDegenerateRing))
}

func TestConvert_Deterministic(t *testing.T) {
	outer := []geometry.Point3{
		pt(0, 0, 0), pt(10, 0, 0), pt(10, 10, 0), pt(0, 10, 0),
	}
	hole := []geometry.Point3{
		pt(4, 4, 0), pt(6, 4, 0), pt(6, 6, 0), pt(4, 6, 0),
	}
	brep := &rhino.Brep{
		Edges: append(ringEdges(outer...), ringEdges(hole...)...),
		Faces: []*rhino.Mesh{fanTessellation(outer...)},
	}

	c, _ := newConverter()
	first, err := c.Convert(brep)
	require.NoError(t, err)
	second, err := c.Convert(brep)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated conversion differed (-first +second):\n%s", diff)
	}
}
