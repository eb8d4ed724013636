package spatialmath

import (
	"github.com/golang/geo/r3"

	"go.viam.com/linedist/utils"
)

// NegateInPlace flips the sign of every component of v.
func NegateInPlace(v *r3.Vector) {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return utils.Float64AlmostEqual(a.X, b.X, epsilon) &&
		utils.Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		utils.Float64AlmostEqual(a.Z, b.Z, epsilon)
}

// IsNearParallel reports whether two direction vectors fall into the near-parallel branch of the
// closest-point solvers, i.e. (u·u)(v·v) - (u·v)² is below the fixed solver epsilon.
func IsNearParallel(u, v r3.Vector) bool {
	return u.Dot(u)*v.Dot(v)-utils.Square(u.Dot(v)) < parallelEpsilon
}
