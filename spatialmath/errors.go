package spatialmath

import (
	"github.com/pkg/errors"
)

// ErrInvalidGeometry is returned by direction-dependent operations on a segment whose start and end coincide.
var ErrInvalidGeometry = errors.New("invalid geometry")

func newInvalidSegmentError(s Segment) error {
	return errors.Wrapf(ErrInvalidGeometry, "segment %v has zero length and no defined direction", s)
}

func newBadRadiusError(radius float64) error {
	return errors.Errorf("capsule radius must be positive, got %v", radius)
}

func newBadRotationMatrixError(reason string) error {
	return errors.Errorf("matrix is not a rotation: %s", reason)
}
