package spatialmath

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/linedist/utils"
)

// Capsule is the set of points within Radius of a segment.
//
// ....___________________
// .../                   \
// .x|  |-------O-------|  |x
// ...\___________________/
type Capsule struct {
	segment Segment
	radius  float64
	label   string
}

// NewCapsule instantiates a new capsule around the given segment.
func NewCapsule(segment Segment, radius float64, label string) (*Capsule, error) {
	if radius <= 0 {
		return nil, newBadRadiusError(radius)
	}
	if !segment.IsValid() {
		return nil, newInvalidSegmentError(segment)
	}
	return &Capsule{segment: segment, radius: radius, label: label}, nil
}

// Segment returns the capsule's core segment.
func (c *Capsule) Segment() Segment {
	return c.segment
}

// Radius returns the capsule's radius.
func (c *Capsule) Radius() float64 {
	return c.radius
}

// Label returns the label of this capsule.
func (c *Capsule) Label() string {
	return c.label
}

// SetLabel sets the label of this capsule.
func (c *Capsule) SetLabel(label string) {
	c.label = label
}

// String returns a human readable string that represents the capsule.
func (c *Capsule) String() string {
	return fmt.Sprintf("Type: Capsule, Radius: %.3f, Length: %.3f", c.radius, c.segment.Length()+2*c.radius)
}

// MarshalJSON encodes the capsule's segment endpoints and radius.
func (c *Capsule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string    `json:"type"`
		Label  string    `json:"label,omitempty"`
		Start  r3.Vector `json:"start"`
		End    r3.Vector `json:"end"`
		Radius float64   `json:"r"`
	}{"capsule", c.label, c.segment.Start, c.segment.End, c.radius})
}

// AlmostEqual compares two capsules.
func (c *Capsule) AlmostEqual(other *Capsule) bool {
	return c.segment.AlmostEqual(other.segment, 1e-6) && utils.Float64AlmostEqual(c.radius, other.radius, 1e-8)
}

// Transform premultiplies the capsule with a pose, allowing the capsule to be moved in space.
func (c *Capsule) Transform(toPremultiply Pose) *Capsule {
	return &Capsule{segment: c.segment.Transform(toPremultiply), radius: c.radius, label: c.label}
}

// DistanceFrom returns the separation between two capsules. A negative value is the penetration depth.
func (c *Capsule) DistanceFrom(other *Capsule) float64 {
	return SegmentToSegmentDistance(c.segment, other.segment).Distance - (c.radius + other.radius)
}

// DistanceFromLine returns the separation between the capsule surface and an infinite line.
func (c *Capsule) DistanceFromLine(l Line) float64 {
	return LineToSegmentDistance(l, c.segment).Distance - c.radius
}

// DistanceFromPoint returns the separation between the capsule surface and a point.
func (c *Capsule) DistanceFromPoint(pt r3.Vector) float64 {
	// the segment is validated at construction
	dist, _ := c.segment.DistanceTo(pt, true)
	return dist - c.radius
}

// CollidesWith reports whether the two capsules are within collisionBufferMM of each other.
func (c *Capsule) CollidesWith(other *Capsule, collisionBufferMM float64) bool {
	return c.DistanceFrom(other) <= collisionBufferMM
}
