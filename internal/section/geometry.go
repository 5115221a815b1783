package section

import (
	"fmt"
	"math"
)

// circleSegments is the number of chords used to outline circular shapes
const circleSegments = 72

// RequiredDimensions returns the parameters shape needs, in input order
func RequiredDimensions(shape Shape) []Param {
	info, ok := shapes[shape]
	if !ok {
		return nil
	}
	out := make([]Param, len(info.params))
	copy(out, info.params)
	return out
}

// Area computes the cross-sectional area (mm²) of shape from dims.
// Parameters the shape does not use are ignored.
func Area(shape Shape, dims Dimensions) (float64, error) {
	if err := validate(shape, dims); err != nil {
		return 0, err
	}

	b, h, t, e, r := dims[ParamB], dims[ParamH], dims[ParamT], dims[ParamE], dims[ParamR]

	var area float64
	switch shape {
	case Rectangle:
		area = b * h
	case IBeam:
		// two flanges plus the web between them
		area = 2*(b*t) + (h-2*t)*e
	case TBeam:
		area = b*t + (h-t)*e
	case HollowRectangle:
		area = b*h - (b-2*t)*(h-2*e)
	case Circle:
		area = math.Pi * r * r
	case HollowCircle:
		ri := r - e
		area = math.Pi * (r*r - ri*ri)
	}

	if math.IsInf(area, 0) || math.IsNaN(area) || area <= 0 {
		first := shapes[shape].params[0]
		return 0, &InvalidDimensionError{
			Shape:      shape,
			Param:      first,
			Value:      dims[first],
			Constraint: "dimensions do not produce a finite positive area",
		}
	}
	return area, nil
}

func validate(shape Shape, dims Dimensions) error {
	info, ok := shapes[shape]
	if !ok {
		return fmt.Errorf("unknown section shape %s", shape)
	}

	for _, p := range info.params {
		v, ok := dims[p]
		if !ok {
			return &InvalidDimensionError{Shape: shape, Param: p, Missing: true}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidDimensionError{Shape: shape, Param: p, Value: v, Constraint: "must be finite"}
		}
		if v <= 0 {
			return &InvalidDimensionError{Shape: shape, Param: p, Value: v, Constraint: "must be positive"}
		}
	}

	b, h, t, e, r := dims[ParamB], dims[ParamH], dims[ParamT], dims[ParamE], dims[ParamR]

	switch shape {
	case IBeam:
		if 2*t >= h {
			return &InvalidDimensionError{Shape: shape, Param: ParamT, Value: t, Constraint: fmt.Sprintf("two flanges (2t) must be less than height h = %g", h)}
		}
		if e >= b {
			return &InvalidDimensionError{Shape: shape, Param: ParamE, Value: e, Constraint: fmt.Sprintf("web must be narrower than width b = %g", b)}
		}
	case TBeam:
		if t >= h {
			return &InvalidDimensionError{Shape: shape, Param: ParamT, Value: t, Constraint: fmt.Sprintf("flange must be thinner than height h = %g", h)}
		}
		if e >= b {
			return &InvalidDimensionError{Shape: shape, Param: ParamE, Value: e, Constraint: fmt.Sprintf("web must be narrower than width b = %g", b)}
		}
	case HollowRectangle:
		if 2*t >= b {
			return &InvalidDimensionError{Shape: shape, Param: ParamT, Value: t, Constraint: fmt.Sprintf("two side walls (2t) must be less than width b = %g", b)}
		}
		if 2*e >= h {
			return &InvalidDimensionError{Shape: shape, Param: ParamE, Value: e, Constraint: fmt.Sprintf("top and bottom walls (2e) must be less than height h = %g", h)}
		}
	case HollowCircle:
		if e >= r {
			return &InvalidDimensionError{Shape: shape, Param: ParamE, Value: e, Constraint: fmt.Sprintf("wall must be thinner than radius r = %g", r)}
		}
	}

	return nil
}

// Outline returns the boundary loops of the section in a local system with
// the origin at the bottom-left of the bounding box and Y pointing up.
// The first loop is the outer boundary (counter-clockwise); any further loops
// are holes. Circles are approximated by regular polygons.
func (in Instance) Outline() ([][]Point, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	d := in.Dimensions
	b, h, t, e, r := d[ParamB], d[ParamH], d[ParamT], d[ParamE], d[ParamR]

	switch in.Shape {
	case Rectangle:
		return [][]Point{rect(0, 0, b, h)}, nil
	case IBeam:
		wl, wr := (b-e)/2, (b+e)/2
		return [][]Point{{
			{0, 0}, {b, 0}, {b, t}, {wr, t},
			{wr, h - t}, {b, h - t}, {b, h}, {0, h},
			{0, h - t}, {wl, h - t}, {wl, t}, {0, t},
		}}, nil
	case TBeam:
		wl, wr := (b-e)/2, (b+e)/2
		return [][]Point{{
			{wl, 0}, {wr, 0}, {wr, h - t}, {b, h - t},
			{b, h}, {0, h}, {0, h - t}, {wl, h - t},
		}}, nil
	case HollowRectangle:
		return [][]Point{rect(0, 0, b, h), reverse(rect(t, e, b-t, h-e))}, nil
	case Circle:
		return [][]Point{ring(r, r, r)}, nil
	case HollowCircle:
		return [][]Point{ring(r, r, r), reverse(ring(r, r, r-e))}, nil
	}
	return nil, fmt.Errorf("unknown section shape %s", in.Shape)
}

func rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func ring(cx, cy, radius float64) []Point {
	pts := make([]Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)}
	}
	return pts
}

func reverse(pts []Point) []Point {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}

// polygonArea returns the signed area of a closed polygon using the shoelace
// formula; positive for counter-clockwise vertices
func polygonArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}

	var signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		signedArea += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return signedArea / 2
}

// OutlineArea sums the signed areas of the outline loops. For polygonal
// shapes it equals Area exactly; circular shapes are slightly smaller.
func OutlineArea(loops [][]Point) float64 {
	var total float64
	for _, loop := range loops {
		total += polygonArea(loop)
	}
	return total
}

// Bounds returns the bounding box of the outline loops
func Bounds(loops [][]Point) (minX, minY, maxX, maxY float64) {
	first := true
	for _, loop := range loops {
		for _, p := range loop {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}
