// Package geometry provides the planar geometry primitives used by the
// conversion core: tolerance-based point operations, polyline assembly
// from line segments, and best-fit-plane checks.
package geometry

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point3 is a point in 3D space. It aliases the sdfx vector type so its
// tolerance equality and arithmetic can be used directly; callers
// construct one as Point3{X: x, Y: y, Z: z}.
type Point3 = v3.Vec

// RemoveDuplicates returns a copy of vertices with every point that is
// equivalent to its predecessor (within tolerance) removed. The first
// vertex is compared against the last, so a closed ring never keeps a
// repeated closing point. Only neighbouring vertices are compared;
// non-adjacent duplicates are kept. The input is never mutated.
func RemoveDuplicates(vertices []Point3, tolerance float64) []Point3 {
	if len(vertices) == 0 {
		return nil
	}
	out := make([]Point3, 0, len(vertices))
	for i, pt := range vertices {
		prev := vertices[(i+len(vertices)-1)%len(vertices)]
		if !pt.Equals(prev, tolerance) {
			out = append(out, pt)
		}
	}
	return out
}
