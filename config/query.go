package config

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/linedist/logging"
	"go.viam.com/linedist/spatialmath"
)

// linear is the line or segment at the core of a geometry along with the clearance its surface adds.
type linear struct {
	line      *spatialmath.Line
	segment   *spatialmath.Segment
	clearance float64
}

func (g Geometry) linear() (linear, error) {
	switch {
	case g.Line != nil:
		return linear{line: g.Line}, nil
	case g.Segment != nil:
		return linear{segment: g.Segment}, nil
	case g.Capsule != nil:
		seg := g.Capsule.Segment()
		return linear{segment: &seg, clearance: g.Capsule.Radius()}, nil
	}
	return linear{}, errors.Errorf("geometry %q has no shape", g.Label)
}

func (l linear) direction() r3.Vector {
	if l.line != nil {
		return l.line.Direction
	}
	return l.segment.End.Sub(l.segment.Start)
}

// Query returns the distance between two geometries. Param1 locates the closest point on a and Param2 on b.
// Capsule radii are subtracted from the distance, so overlapping capsules report a negative distance.
func Query(logger logging.Logger, a, b Geometry) (spatialmath.DistanceResult, error) {
	la, err := a.linear()
	if err != nil {
		return spatialmath.DistanceResult{}, err
	}
	lb, err := b.linear()
	if err != nil {
		return spatialmath.DistanceResult{}, err
	}

	if spatialmath.IsNearParallel(la.direction(), lb.direction()) {
		logger.Debugw("geometries are near parallel, closest points are not unique", "a", a.Label, "b", b.Label)
	}

	var res spatialmath.DistanceResult
	switch {
	case la.line != nil && lb.line != nil:
		res = spatialmath.LineToLineDistance(*la.line, *lb.line)
	case la.line != nil:
		res = spatialmath.LineToSegmentDistance(*la.line, *lb.segment)
	case lb.line != nil:
		res = spatialmath.LineToSegmentDistance(*lb.line, *la.segment)
		res.Param1, res.Param2 = res.Param2, res.Param1
	default:
		res = spatialmath.SegmentToSegmentDistance(*la.segment, *lb.segment)
	}
	res.Distance -= la.clearance + lb.clearance

	logger.Debugw("distance", "a", a.Label, "b", b.Label, "distance", res.Distance, "param1", res.Param1, "param2", res.Param2)
	return res, nil
}
