package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Line is the infinite line Origin + t*Direction. Direction need not be unit length; its magnitude sets the
// scale of the parameter t.
type Line struct {
	Origin    r3.Vector `json:"origin"`
	Direction r3.Vector `json:"direction"`
}

// NewLine returns the line through origin along direction.
func NewLine(origin, direction r3.Vector) Line {
	return Line{Origin: origin, Direction: direction}
}

// NewLineThrough returns the line through two points, parameterized so that a is at 0 and b is at 1.
func NewLineThrough(a, b r3.Vector) Line {
	return Line{Origin: a, Direction: b.Sub(a)}
}

// PointAt returns the point on the line at parameter t.
func (l Line) PointAt(t float64) r3.Vector {
	return l.Origin.Add(l.Direction.Mul(t))
}

// Transform premultiplies the line with a pose. The direction is rotated but not translated.
func (l Line) Transform(p Pose) Line {
	return Line{Origin: TransformPoint(p, l.Origin), Direction: RotateVector(p, l.Direction)}
}

// String returns a human readable string that represents the line.
func (l Line) String() string {
	return fmt.Sprintf("Line{Origin: %v, Direction: %v}", l.Origin, l.Direction)
}
