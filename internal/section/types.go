package section

import (
	"fmt"
	"strings"
)

// Shape is one of the supported cross-section profiles
type Shape int

const (
	shapeInvalid Shape = iota
	IBeam
	TBeam
	Rectangle
	HollowRectangle
	Circle
	HollowCircle
)

// Param names a dimension parameter. All dimensions are in mm.
type Param string

const (
	ParamB Param = "b" // width
	ParamH Param = "h" // height
	ParamT Param = "t" // flange thickness, or side wall thickness of a hollow rectangle
	ParamE Param = "e" // web thickness, or wall thickness of hollow shapes
	ParamR Param = "r" // outer radius
)

// Dimensions binds parameter names to values (mm)
type Dimensions map[Param]float64

type shapeInfo struct {
	name   string
	params []Param
	labels map[Param]string
}

var beamLabels = map[Param]string{
	ParamB: "Width (b)",
	ParamH: "Height (h)",
	ParamT: "Flange Thickness (t)",
	ParamE: "Web Thickness (e)",
}

var shapes = map[Shape]shapeInfo{
	IBeam: {
		name:   "I-beam",
		params: []Param{ParamB, ParamH, ParamT, ParamE},
		labels: beamLabels,
	},
	TBeam: {
		name:   "T-beam",
		params: []Param{ParamB, ParamH, ParamT, ParamE},
		labels: beamLabels,
	},
	Rectangle: {
		name:   "Rectangle",
		params: []Param{ParamB, ParamH},
		labels: map[Param]string{ParamB: "Width (b)", ParamH: "Height (h)"},
	},
	HollowRectangle: {
		name:   "Hollow Rectangle",
		params: []Param{ParamB, ParamH, ParamT, ParamE},
		labels: map[Param]string{
			ParamB: "Width (b)",
			ParamH: "Height (h)",
			ParamT: "Side Wall Thickness (t)",
			ParamE: "Top/Bottom Wall Thickness (e)",
		},
	},
	Circle: {
		name:   "Circle",
		params: []Param{ParamR},
		labels: map[Param]string{ParamR: "Radius (r)"},
	},
	HollowCircle: {
		name:   "Hollow Circle",
		params: []Param{ParamR, ParamE},
		labels: map[Param]string{ParamR: "Radius (r)", ParamE: "Wall Thickness (e)"},
	},
}

// Shapes returns the supported shapes in display order
func Shapes() []Shape {
	return []Shape{IBeam, TBeam, Rectangle, HollowRectangle, Circle, HollowCircle}
}

func (s Shape) String() string {
	if info, ok := shapes[s]; ok {
		return info.name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Valid reports whether s is one of the supported shapes
func (s Shape) Valid() bool {
	_, ok := shapes[s]
	return ok
}

// Label returns the input label for p on this shape, e.g. "Web Thickness (e)"
func (s Shape) Label(p Param) string {
	if l, ok := shapes[s].labels[p]; ok {
		return l
	}
	return string(p)
}

// ParseShape accepts display names ("Hollow Circle") and their
// case, space, dash and underscore insensitive forms ("hollow_circle", "ibeam")
func ParseShape(s string) (Shape, error) {
	key := normalize(s)
	for _, shape := range Shapes() {
		if normalize(shape.String()) == key {
			return shape, nil
		}
	}
	switch key {
	case "rect":
		return Rectangle, nil
	case "hollowrect":
		return HollowRectangle, nil
	}
	return shapeInvalid, fmt.Errorf("unknown section shape %q", s)
}

func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid section shape %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	shape, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// ParseParam checks that s names a dimension parameter
func ParseParam(s string) (Param, error) {
	p := Param(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ParamB, ParamH, ParamT, ParamE, ParamR:
		return p, nil
	}
	return "", fmt.Errorf("unknown dimension parameter %q", s)
}

// InvalidDimensionError reports a missing, non-positive or geometrically
// inconsistent dimension
type InvalidDimensionError struct {
	Shape      Shape
	Param      Param
	Value      float64
	Constraint string
	Missing    bool
}

func (e *InvalidDimensionError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: dimension %s is required", e.Shape, e.Param)
	}
	return fmt.Sprintf("%s: invalid dimension %s = %g: %s", e.Shape, e.Param, e.Value, e.Constraint)
}

// Instance is a shape bound to concrete dimensions
type Instance struct {
	Shape      Shape
	Dimensions Dimensions
}

// NewInstance binds dims to shape, rejecting invalid dimensions
func NewInstance(shape Shape, dims Dimensions) (Instance, error) {
	inst := Instance{Shape: shape, Dimensions: make(Dimensions, len(dims))}
	for p, v := range dims {
		inst.Dimensions[p] = v
	}
	if err := inst.Validate(); err != nil {
		return Instance{}, err
	}
	return inst, nil
}

// Validate checks the dimensions against the shape's requirements
func (in Instance) Validate() error {
	return validate(in.Shape, in.Dimensions)
}

// Area returns the cross-sectional area (mm²)
func (in Instance) Area() (float64, error) {
	return Area(in.Shape, in.Dimensions)
}

// Point represents a 2D coordinate (mm)
type Point struct {
	X float64
	Y float64
}
