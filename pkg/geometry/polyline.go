package geometry

// Segment is a straight line between two points.
type Segment struct {
	Start Point3
	End   Point3
}

// Length returns the distance between the segment endpoints.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Length()
}

// Polyline is an ordered sequence of at least two points. When used as
// a face ring the last point connects back to the first.
type Polyline []Point3

// Length returns the sum of the segment lengths between consecutive
// vertices. The implicit closing segment of a ring is not counted;
// polylines produced by JoinSegments carry an explicit closing vertex.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Sub(p[i-1]).Length()
	}
	return total
}

// IsClosed reports whether the first and last vertices coincide within
// tolerance. Polylines with fewer than three vertices are never closed.
func (p Polyline) IsClosed(tolerance float64) bool {
	if len(p) < 3 {
		return false
	}
	return p[0].Equals(p[len(p)-1], tolerance)
}

// JoinSegments joins unordered segments into maximal polylines. Two
// segments are chained when they share an endpoint within tolerance;
// each chain grows at both ends until it closes or no remaining
// segment attaches. A chain stops growing the moment it closes, so two
// rings that share a single vertex still come out as separate chains.
// Chain count and order follow the input order, so the result is
// deterministic for a given input.
func JoinSegments(segments []Segment, tolerance float64) []Polyline {
	used := make([]bool, len(segments))
	var polylines []Polyline

	for i, seg := range segments {
		if used[i] {
			continue
		}
		used[i] = true
		chain := Polyline{seg.Start, seg.End}

		for extended := true; extended && !chain.IsClosed(tolerance); {
			extended = false
			for j, next := range segments {
				if used[j] {
					continue
				}
				head := chain[0]
				tail := chain[len(chain)-1]
				switch {
				case next.Start.Equals(tail, tolerance):
					chain = append(chain, next.End)
				case next.End.Equals(tail, tolerance):
					chain = append(chain, next.Start)
				case next.End.Equals(head, tolerance):
					chain = append(Polyline{next.Start}, chain...)
				case next.Start.Equals(head, tolerance):
					chain = append(Polyline{next.End}, chain...)
				default:
					continue
				}
				used[j] = true
				extended = true
				if chain.IsClosed(tolerance) {
					break
				}
			}
		}
		polylines = append(polylines, chain)
	}
	return polylines
}
