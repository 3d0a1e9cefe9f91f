package template

import (
	"time"

	"github.com/golang/geo/r3"
	"github.com/google/uuid"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/shape"
)

// Origin modes for the pose offset.
const (
	// OriginCenter places the object origin at the symmetry center; the
	// pose-offset translation carries the back-projected canvas center.
	OriginCenter = "center"

	// OriginCorner places the object origin at the canvas corner; the
	// pose-offset translation is zero.
	OriginCorner = "corner"
)

// dateFormat is the second-precision ISO-8601 timestamp written into the
// metadata document.
const dateFormat = "2006-01-02T15:04:05"

// PixelPoint is a 2D position in pixel coordinates.
type PixelPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Quaternion is a rotation in w/x/y/z form.
type Quaternion struct {
	W float64 `yaml:"w"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Translation is a metric 3D offset.
type Translation struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PoseOffset is the rigid transform aligning the template's symmetry
// center with the object's reference pose. The rotation is always the
// identity quaternion.
type PoseOffset struct {
	Rotation    Quaternion  `yaml:"rotation"`
	Translation Translation `yaml:"translation"`
}

// Metadata is the template descriptor serialized as the meta.yaml entry.
type Metadata struct {
	ObjectUUID         string     `yaml:"object-uuid"`
	Date               string     `yaml:"date"`
	PlaneDistance      float64    `yaml:"plane-distance"`
	ObjectHeight       float64    `yaml:"object-height"`
	FocalLength        float64    `yaml:"focal-length"`
	RotationalSymmetry int        `yaml:"rotational-symmetry"`
	SymmetryCenter     PixelPoint `yaml:"symmetry-center"`
	PoseOffset         PoseOffset `yaml:"pose-offset"`
}

// ReduceSymmetry folds the rotational symmetry orders of all shapes into
// one aggregate order via the greatest common divisor. The fold has no
// identity, so an empty shape list is a configuration error.
func ReduceSymmetry(shapes []shape.Shape) (int, error) {
	if len(shapes) == 0 {
		return 0, errors.New(errors.ErrCodeConfiguration, "at least one shape is required")
	}
	sym := shapes[0].RotationalSymmetry()
	for _, s := range shapes[1:] {
		sym = gcd(sym, s.RotationalSymmetry())
	}
	return sym, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// BackProject converts a pixel position back to a metric offset on the
// silhouette plane at the given distance, inverting the pinhole
// projection. The result lies in the plane, so Z is always zero.
func BackProject(p raster.Point, focalLength, distance float64) r3.Vector {
	return r3.Vector{
		X: p.X / focalLength * distance,
		Y: p.Y / focalLength * distance,
		Z: 0,
	}
}

// BuildMetadata assembles the template descriptor for a rendered result:
// a fresh UUID, a second-precision timestamp, the echoed camera geometry,
// the aggregate rotational symmetry, and the pose offset for the requested
// origin mode.
//
// Origin "corner" yields a zero translation; origin "center" back-projects
// the draw center at the template distance. Any other origin is a
// configuration error.
func BuildMetadata(res *RenderResult, shapes []shape.Shape, focalLength, planeDistance, objectHeight float64, origin string) (*Metadata, error) {
	sym, err := ReduceSymmetry(shapes)
	if err != nil {
		return nil, err
	}

	var translation r3.Vector
	switch origin {
	case OriginCorner:
		// Zero offset: the object origin coincides with the camera axis.
	case OriginCenter:
		translation = BackProject(res.Center, focalLength, res.TemplateDistance)
	default:
		return nil, errors.New(errors.ErrCodeConfiguration, "origin %q invalid (must be %q or %q)", origin, OriginCorner, OriginCenter)
	}

	return &Metadata{
		ObjectUUID:         uuid.New().String(),
		Date:               time.Now().Format(dateFormat),
		PlaneDistance:      planeDistance,
		ObjectHeight:       objectHeight,
		FocalLength:        focalLength,
		RotationalSymmetry: sym,
		SymmetryCenter:     PixelPoint{X: res.Center.X, Y: res.Center.Y},
		PoseOffset: PoseOffset{
			Rotation:    Quaternion{W: 1},
			Translation: Translation{X: translation.X, Y: translation.Y, Z: translation.Z},
		},
	}, nil
}
