package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/linedist/utils"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{math.Cos(th / 2.), math.Sin(th / 2.), 0, 0} // in quaternion representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                 // in euler angle representation
	rm45x = &RotationMatrix{[9]float64{
		1, 0, 0,
		0, math.Cos(th), -math.Sin(th),
		0, math.Sin(th), math.Cos(th),
	}} // in rotation matrix representation
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{1, 0, 0, 0})
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
	test.That(t, zero.RotationMatrix(), test.ShouldResemble, &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}})
}

func TestQuaternions(t *testing.T) {
	qq45x := quaternion(q45x)
	test.That(t, qq45x.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, qq45x.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, qq45x.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	for i := 0; i < 9; i++ {
		test.That(t, qq45x.RotationMatrix().mat[i], test.ShouldAlmostEqual, rm45x.mat[i])
	}
}

func TestEulerAngles(t *testing.T) {
	test.That(t, QuaternionAlmostEqual(ea45x.Quaternion(), q45x, 1e-12), test.ShouldBeTrue)
	for i := 0; i < 9; i++ {
		test.That(t, ea45x.RotationMatrix().mat[i], test.ShouldAlmostEqual, rm45x.mat[i])
	}

	// round trip away from gimbal lock
	ea := &EulerAngles{Roll: utils.DegToRad(10), Pitch: utils.DegToRad(-35), Yaw: utils.DegToRad(120)}
	back := QuatToEulerAngles(ea.Quaternion())
	test.That(t, back.Roll, test.ShouldAlmostEqual, ea.Roll)
	test.That(t, back.Pitch, test.ShouldAlmostEqual, ea.Pitch)
	test.That(t, back.Yaw, test.ShouldAlmostEqual, ea.Yaw)

	// gimbal lock pins pitch at +-90 degrees
	locked := QuatToEulerAngles((&EulerAngles{Pitch: math.Pi / 2}).Quaternion())
	test.That(t, locked.Pitch, test.ShouldAlmostEqual, math.Pi/2)
}

func TestRotationMatrix(t *testing.T) {
	test.That(t, QuaternionAlmostEqual(rm45x.Quaternion(), q45x, 1e-12), test.ShouldBeTrue)
	test.That(t, rm45x.EulerAngles().Roll, test.ShouldAlmostEqual, th)
	test.That(t, rm45x.At(1, 2), test.ShouldAlmostEqual, -math.Sin(th))
	test.That(t, rm45x.Row(0), test.ShouldResemble, r3.Vector{1, 0, 0})
	test.That(t, rm45x.Col(0), test.ShouldResemble, r3.Vector{1, 0, 0})

	rotated := rm45x.Mul(r3.Vector{0, 1, 0})
	test.That(t, R3VectorAlmostEqual(rotated, r3.Vector{0, math.Cos(th), math.Sin(th)}, 1e-12), test.ShouldBeTrue)
	back := rm45x.Transpose().Mul(rotated)
	test.That(t, R3VectorAlmostEqual(back, r3.Vector{0, 1, 0}, 1e-12), test.ShouldBeTrue)

	// every branch of the matrix to quaternion conversion
	for _, ea := range []*EulerAngles{
		{Roll: 0.3, Pitch: 0.2, Yaw: 0.1},
		{Roll: math.Pi - 0.1},
		{Pitch: math.Pi - 0.1},
		{Yaw: math.Pi - 0.1},
	} {
		rm := ea.RotationMatrix()
		test.That(t, QuaternionAlmostEqual(rm.Quaternion(), ea.Quaternion(), 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(rm.Mul(r3.Vector{1, 2, 3}), RotateVector(NewPoseFromOrientation(ea), r3.Vector{1, 2, 3}), 1e-9),
			test.ShouldBeTrue)
	}
}

func TestNewRotationMatrix(t *testing.T) {
	rm, err := NewRotationMatrix([]float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.EulerAngles().Yaw, test.ShouldAlmostEqual, math.Pi/2)

	_, err = NewRotationMatrix([]float64{1, 0, 0})
	test.That(t, err, test.ShouldBeError, newBadRotationMatrixError("input slice must have exactly 9 elements"))

	_, err = NewRotationMatrix([]float64{2, 0, 0, 0, 0.5, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeError, newBadRotationMatrixError("rows must be orthonormal"))

	// a reflection is orthonormal but not a rotation
	_, err = NewRotationMatrix([]float64{-1, 0, 0, 0, 1, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeError, newBadRotationMatrixError("determinant must be 1"))
}

func TestOrientationBetween(t *testing.T) {
	o1 := &EulerAngles{Yaw: 0.5}
	o2 := &EulerAngles{Yaw: 1.25}
	between := OrientationBetween(o1, o2)
	test.That(t, between.EulerAngles().Yaw, test.ShouldAlmostEqual, 0.75)
	test.That(t, OrientationAlmostEqual(o1, o1.RotationMatrix()), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(o1, o2), test.ShouldBeFalse)

	// q and -q are the same rotation
	test.That(t, QuaternionAlmostEqual(q45x, quat.Scale(-1, q45x), 1e-12), test.ShouldBeTrue)
}

func TestPose(t *testing.T) {
	p := NewPose(r3.Vector{1, 2, 3}, &EulerAngles{Yaw: math.Pi / 2})
	test.That(t, R3VectorAlmostEqual(TransformPoint(p, r3.Vector{1, 0, 0}), r3.Vector{1, 3, 3}, 1e-12), test.ShouldBeTrue)

	composed := Compose(p, PoseInverse(p))
	test.That(t, PoseAlmostEqual(composed, NewZeroPose(), 1e-9), test.ShouldBeTrue)

	twice := Compose(p, p)
	test.That(t, R3VectorAlmostEqual(twice.Point(), r3.Vector{-1, 3, 6}, 1e-9), test.ShouldBeTrue)
	test.That(t, twice.Orientation().EulerAngles().Yaw, test.ShouldAlmostEqual, math.Pi)

	test.That(t, PoseAlmostEqual(NewPose(r3.Vector{1, 2, 3}, nil), NewPoseFromPoint(r3.Vector{1, 2, 3}), 1e-12), test.ShouldBeTrue)
}
