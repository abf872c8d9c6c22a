package togeometry

import (
	"sort"

	"github.com/chriswmackey/honeybee-3dm/pkg/geometry"
)

// separate orders polylines so the longest becomes the face boundary
// and the rest its holes, in descending length order. The sort is a
// stable ascending sort followed by a reversal; equal-length polylines
// keep their relative order reversed, nothing beyond stability is
// guaranteed for them.
func separate(polylines []geometry.Polyline) (boundary geometry.Polyline, holes []geometry.Polyline) {
	sorted := make([]geometry.Polyline, len(polylines))
	copy(sorted, polylines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length() < sorted[j].Length()
	})
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted[0], sorted[1:]
}

// touchesBoundary reports whether any vertex of any hole ring is
// equivalent, within tolerance, to a vertex of the boundary ring. Both
// sides are expected to be deduplicated vertex lists; the test is
// membership over those lists, not proximity to the boundary edges.
func touchesBoundary(boundary []geometry.Point3, holes [][]geometry.Point3, tolerance float64) bool {
	for _, hole := range holes {
		for _, pt := range hole {
			for _, bpt := range boundary {
				if pt.Equals(bpt, tolerance) {
					return true
				}
			}
		}
	}
	return false
}
