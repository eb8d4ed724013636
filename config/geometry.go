// Package config describes lines, segments and capsules in JSON and turns them into spatialmath values.
package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/linedist/spatialmath"
	"go.viam.com/linedist/utils"
)

// GeometryType names the kind of geometry a GeometryConfig describes.
type GeometryType string

// The geometry types that can be configured.
const (
	LineType    = GeometryType("line")
	SegmentType = GeometryType("segment")
	CapsuleType = GeometryType("capsule")
)

// GeometryConfig is the JSON form of a single geometry. Lines use Origin and Direction; segments and
// capsules use Start and End, and capsules additionally R.
type GeometryConfig struct {
	Type      GeometryType `json:"type"`
	Label     string       `json:"label"`
	Origin    *r3.Vector   `json:"origin,omitempty"`
	Direction *r3.Vector   `json:"direction,omitempty"`
	Start     *r3.Vector   `json:"start,omitempty"`
	End       *r3.Vector   `json:"end,omitempty"`
	R         float64      `json:"r,omitempty"`
}

// Geometry is a parsed GeometryConfig. Exactly one of Line, Segment and Capsule is set.
type Geometry struct {
	Label   string
	Line    *spatialmath.Line
	Segment *spatialmath.Segment
	Capsule *spatialmath.Capsule
}

// String returns a human readable string that represents the geometry.
func (g Geometry) String() string {
	switch {
	case g.Line != nil:
		return g.Line.String()
	case g.Segment != nil:
		return g.Segment.String()
	case g.Capsule != nil:
		return g.Capsule.String()
	}
	return "empty geometry"
}

// Validate ensures all parts of the config are valid.
func (config *GeometryConfig) Validate(path string) error {
	if config.Label == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "label")
	}
	switch config.Type {
	case LineType:
		if config.Origin == nil {
			return goutils.NewConfigValidationFieldRequiredError(path, "origin")
		}
		if config.Direction == nil {
			return goutils.NewConfigValidationFieldRequiredError(path, "direction")
		}
		if config.Direction.Norm2() == 0 {
			return goutils.NewConfigValidationError(path, errors.New("line direction must be non-zero"))
		}
	case SegmentType, CapsuleType:
		if config.Start == nil {
			return goutils.NewConfigValidationFieldRequiredError(path, "start")
		}
		if config.End == nil {
			return goutils.NewConfigValidationFieldRequiredError(path, "end")
		}
		if *config.Start == *config.End {
			return goutils.NewConfigValidationError(path, spatialmath.ErrInvalidGeometry)
		}
		if config.Type == CapsuleType && config.R <= 0 {
			return goutils.NewConfigValidationError(path, errors.New("capsule r must be positive"))
		}
	case "":
		return goutils.NewConfigValidationFieldRequiredError(path, "type")
	default:
		return goutils.NewConfigValidationError(path, errors.Errorf("geometry type %q not recognized", config.Type))
	}
	return nil
}

// ParseConfig converts a GeometryConfig into a Geometry.
func (config *GeometryConfig) ParseConfig() (Geometry, error) {
	if err := config.Validate("geometry"); err != nil {
		return Geometry{}, err
	}
	g := Geometry{Label: config.Label}
	switch config.Type {
	case LineType:
		l := spatialmath.NewLine(*config.Origin, *config.Direction)
		g.Line = &l
	case SegmentType:
		s := spatialmath.NewSegment(*config.Start, *config.End)
		g.Segment = &s
	case CapsuleType:
		c, err := spatialmath.NewCapsule(spatialmath.NewSegment(*config.Start, *config.End), config.R, config.Label)
		if err != nil {
			return Geometry{}, err
		}
		g.Capsule = c
	}
	return g, nil
}

// GeometryConfigFromAttributes decodes a loosely typed attribute map, as found embedded in larger
// configs, into a GeometryConfig.
func GeometryConfigFromAttributes(attributes map[string]interface{}) (*GeometryConfig, error) {
	var conf GeometryConfig
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Result:   &conf,
		Metadata: &md,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, err
	}
	if len(md.Unused) > 0 {
		return nil, errors.Errorf("unknown geometry attributes %v", md.Unused)
	}
	return &conf, nil
}

// GeometryConfigFromAttribute decodes the geometry nested under key in an attribute map.
func GeometryConfigFromAttribute(attributes map[string]interface{}, key string) (*GeometryConfig, error) {
	raw, ok := attributes[key]
	if !ok {
		return nil, errors.Errorf("no geometry attribute %q", key)
	}
	nested, ok := raw.(map[string]interface{})
	if !ok {
		return nil, utils.NewUnexpectedTypeError(nested, raw)
	}
	return GeometryConfigFromAttributes(nested)
}

// NewGeometryConfig returns the config describing g.
func NewGeometryConfig(g Geometry) (*GeometryConfig, error) {
	conf := &GeometryConfig{Label: g.Label}
	switch {
	case g.Line != nil:
		conf.Type = LineType
		origin, direction := g.Line.Origin, g.Line.Direction
		conf.Origin, conf.Direction = &origin, &direction
	case g.Segment != nil:
		conf.Type = SegmentType
		start, end := g.Segment.Start, g.Segment.End
		conf.Start, conf.End = &start, &end
	case g.Capsule != nil:
		conf.Type = CapsuleType
		seg := g.Capsule.Segment()
		conf.Start, conf.End = &seg.Start, &seg.End
		conf.R = g.Capsule.Radius()
	default:
		return nil, errors.Errorf("geometry %q has no shape", g.Label)
	}
	return conf, nil
}
