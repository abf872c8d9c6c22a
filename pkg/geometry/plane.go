package geometry

import (
	"gonum.org/v1/gonum/mat"
)

// PlaneDeviation returns the maximum distance of the given points from
// their best-fit plane. The plane is fit by singular value
// decomposition of the centred point matrix; the singular vector with
// the smallest singular value is the plane normal. Three or fewer
// points always fit a plane exactly, so the deviation is zero.
func PlaneDeviation(points []Point3) float64 {
	if len(points) <= 3 {
		return 0
	}

	var centroid Point3
	for _, pt := range points {
		centroid = centroid.Add(pt)
	}
	centroid = centroid.DivScalar(float64(len(points)))

	data := make([]float64, 0, 3*len(points))
	for _, pt := range points {
		d := pt.Sub(centroid)
		data = append(data, d.X, d.Y, d.Z)
	}
	m := mat.NewDense(len(points), 3, data)

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		// Factorization failure means the points are degenerate;
		// report them as wildly non-planar so callers fall back.
		return mat.Norm(m, 2)
	}
	var v mat.Dense
	svd.VTo(&v)

	// Singular values are ordered descending, so the last right
	// singular vector spans the direction of least spread.
	normal := Point3{X: v.At(0, 2), Y: v.At(1, 2), Z: v.At(2, 2)}

	var worst float64
	for _, pt := range points {
		dist := pt.Sub(centroid).Dot(normal)
		if dist < 0 {
			dist = -dist
		}
		if dist > worst {
			worst = dist
		}
	}
	return worst
}

// Planar reports whether the points lie on a common plane within
// tolerance.
func Planar(points []Point3, tolerance float64) bool {
	return PlaneDeviation(points) <= tolerance
}
