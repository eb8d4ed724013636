package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// parallelEpsilon is the absolute threshold used both to classify two directions as parallel and to snap
// near-zero numerators to zero. It is not scale-normalized: directions of very small or very large
// magnitude can be misclassified.
const parallelEpsilon = 1e-6

// DistanceResult is the outcome of a closest-point query between two linear geometries.
// Param1 and Param2 locate the closest points on the first and second input respectively,
// in units of each input's direction vector.
type DistanceResult struct {
	Distance float64
	Param1   float64
	Param2   float64
}

// LineToLineDistance returns the distance between two infinite lines and the parameter on each line
// at which it is attained. Parallel lines are resolved by fixing the first parameter at 0. Parameters are
// plain quotients with no near-zero snapping, so a zero second direction on parallel lines yields NaN.
func LineToLineDistance(l1, l2 Line) DistanceResult {
	return closestDistance(l1.Origin, l1.Direction, l2.Origin, l2.Direction, false, false)
}

// SegmentToSegmentDistance returns the distance between two finite segments. Both parameters lie in [0, 1].
// Zero-length segments are not rejected; they fall through the parallel branch.
func SegmentToSegmentDistance(s1, s2 Segment) DistanceResult {
	return closestDistance(s1.Start, s1.End.Sub(s1.Start), s2.Start, s2.End.Sub(s2.Start), true, true)
}

// LineToSegmentDistance returns the distance between an infinite line and a finite segment.
// Param1 is not clamped, Param2 lies in [0, 1]. When the segment is pinned at an endpoint whose projection
// falls behind the line origin, Param1 is pinned at 0, so the result can exceed the true minimum.
func LineToSegmentDistance(l Line, s Segment) DistanceResult {
	return closestDistance(l.Origin, l.Direction, s.Start, s.End.Sub(s.Start), false, true)
}

func closestDistance(origin1, u, origin2, v r3.Vector, clampFirst, clampSecond bool) DistanceResult {
	w := origin1.Sub(origin2)
	sc, tc := closestParameters(u, v, w, clampFirst, clampSecond)
	return DistanceResult{
		Distance: w.Add(u.Mul(sc)).Sub(v.Mul(tc)).Norm(),
		Param1:   sc,
		Param2:   tc,
	}
}

// closestParameters minimizes |w + s*u - t*v| over s and t, where w is the offset between the two origins.
// Each flag restricts its parameter to [0, 1]. Numerators and denominators are carried separately so that a
// clamp on one parameter can re-derive the other without dividing by a vanishing determinant.
func closestParameters(u, v, w r3.Vector, clampFirst, clampSecond bool) (float64, float64) {
	a := u.Dot(u)
	b := u.Dot(v)
	c := v.Dot(v)
	d := u.Dot(w)
	e := v.Dot(w)
	det := a*c - b*b

	var sN, tN float64
	sD, tD := det, det
	if det < parallelEpsilon {
		// parallel: pin the first parameter and project its origin onto the second input
		sN, sD = 0, 1
		tN, tD = e, c
		if !clampFirst && !clampSecond && b > c {
			tN, tD = d, b
		}
	} else {
		sN = b*e - c*d
		tN = a*e - b*d
		if clampFirst {
			if sN < 0 {
				sN = 0
				tN, tD = e, c
			} else if sN > sD {
				sN = sD
				tN, tD = e+b, c
			}
		}
	}

	if !clampFirst && !clampSecond {
		return sN / sD, tN / tD
	}

	if clampSecond {
		if tN < 0 {
			tN = 0
			sN, sD = rederiveFirst(-d, a, sD, clampFirst)
		} else if tN > tD {
			tN = tD
			sN, sD = rederiveFirst(b-d, a, sD, clampFirst)
		}
	}

	return snapQuotient(sN, sD), snapQuotient(tN, tD)
}

// rederiveFirst returns the first parameter as a numerator/denominator pair once the second parameter has been
// pinned to a boundary. num/a is the optimum along the first direction; sD is the current denominator.
// A negative num pins the first parameter at 0 even when it is unclamped, and only a clamped parameter
// is held at its upper bound.
func rederiveFirst(num, a, sD float64, clamp bool) (float64, float64) {
	switch {
	case num < 0:
		return 0, sD
	case clamp && num > a:
		return sD, sD
	default:
		return num, a
	}
}

func snapQuotient(num, den float64) float64 {
	if math.Abs(num) < parallelEpsilon {
		return 0
	}
	return num / den
}
