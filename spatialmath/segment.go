package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/linedist/utils"
)

// Segment is the finite set of points Start + s*(End-Start) for s in [0, 1].
// A segment whose endpoints coincide has no direction; operations that need one return ErrInvalidGeometry.
type Segment struct {
	Start r3.Vector `json:"start"`
	End   r3.Vector `json:"end"`
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end r3.Vector) Segment {
	return Segment{Start: start, End: end}
}

// IsValid reports whether the segment has distinct endpoints.
func (s Segment) IsValid() bool {
	return s.Start != s.End
}

// Direction returns End - Start.
func (s Segment) Direction() (r3.Vector, error) {
	if !s.IsValid() {
		return r3.Vector{}, newInvalidSegmentError(s)
	}
	return s.End.Sub(s.Start), nil
}

// UnitDirection returns the normalized direction of the segment.
func (s Segment) UnitDirection() (r3.Vector, error) {
	dir, err := s.Direction()
	if err != nil {
		return r3.Vector{}, err
	}
	return dir.Normalize(), nil
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Norm()
}

// SetLength moves End so the segment has the given length, keeping Start fixed.
// A negative length reverses the segment's direction before scaling by its magnitude.
func (s *Segment) SetLength(length float64) error {
	unit, err := s.UnitDirection()
	if err != nil {
		return err
	}
	if length < 0 {
		NegateInPlace(&unit)
	}
	s.End = s.Start.Add(unit.Mul(math.Abs(length)))
	return nil
}

// Line returns the infinite line that contains the segment, with the same parameterization.
func (s Segment) Line() (Line, error) {
	dir, err := s.Direction()
	if err != nil {
		return Line{}, err
	}
	return Line{Origin: s.Start, Direction: dir}, nil
}

// PointAt returns Start + param*(End-Start). param is not restricted to [0, 1].
func (s Segment) PointAt(param float64) (r3.Vector, error) {
	dir, err := s.Direction()
	if err != nil {
		return r3.Vector{}, err
	}
	return s.Start.Add(dir.Mul(param)), nil
}

// PointAtLength returns the point the given distance from Start along the segment's direction.
func (s Segment) PointAtLength(distance float64) (r3.Vector, error) {
	unit, err := s.UnitDirection()
	if err != nil {
		return r3.Vector{}, err
	}
	return s.Start.Add(unit.Mul(distance)), nil
}

// ClosestParameter returns the parameter of the projection of pt onto the segment's line.
// If clampToSegment is set the parameter is restricted to [0, 1].
func (s Segment) ClosestParameter(pt r3.Vector, clampToSegment bool) (float64, error) {
	dir, err := s.Direction()
	if err != nil {
		return 0, err
	}
	param := pt.Sub(s.Start).Dot(dir) / dir.Norm2()
	if clampToSegment {
		param = utils.Clamp(param, 0, 1)
	}
	return param, nil
}

// ClosestPoint returns the point at ClosestParameter.
func (s Segment) ClosestPoint(pt r3.Vector, clampToSegment bool) (r3.Vector, error) {
	param, err := s.ClosestParameter(pt, clampToSegment)
	if err != nil {
		return r3.Vector{}, err
	}
	return s.PointAt(param)
}

// DistanceTo returns the distance from pt to ClosestPoint.
func (s Segment) DistanceTo(pt r3.Vector, clampToSegment bool) (float64, error) {
	closest, err := s.ClosestPoint(pt, clampToSegment)
	if err != nil {
		return 0, err
	}
	return pt.Sub(closest).Norm(), nil
}

// Extend returns a new segment with Start moved back by startDelta and End moved forward by endDelta along
// the unit direction. Positive deltas lengthen the segment.
func (s Segment) Extend(startDelta, endDelta float64) (Segment, error) {
	unit, err := s.UnitDirection()
	if err != nil {
		return Segment{}, err
	}
	return Segment{
		Start: s.Start.Sub(unit.Mul(startDelta)),
		End:   s.End.Add(unit.Mul(endDelta)),
	}, nil
}

// Flip returns the segment with its endpoints swapped.
func (s Segment) Flip() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Equals reports whether both endpoints are identical.
func (s Segment) Equals(other Segment) bool {
	return s.Start == other.Start && s.End == other.End
}

// AlmostEqual reports whether both endpoints are within epsilon of each other.
func (s Segment) AlmostEqual(other Segment, epsilon float64) bool {
	return R3VectorAlmostEqual(s.Start, other.Start, epsilon) && R3VectorAlmostEqual(s.End, other.End, epsilon)
}

// Transform premultiplies both endpoints with a pose.
func (s Segment) Transform(p Pose) Segment {
	return Segment{Start: TransformPoint(p, s.Start), End: TransformPoint(p, s.End)}
}

// String returns a human readable string that represents the segment.
func (s Segment) String() string {
	return fmt.Sprintf("Segment{Start: %v, End: %v}", s.Start, s.End)
}
