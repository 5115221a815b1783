package section

// Limit is the input range the interactive tools offer for a parameter.
// Values outside it are still valid geometry; the range only guides input.
type Limit struct {
	Min     float64 // mm
	Max     float64 // mm
	Default float64 // mm
}

// Contains reports whether v lies within the limit
func (l Limit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

var beamLimits = map[Param]Limit{
	ParamB: {Min: 50, Max: 1000, Default: 200},
	ParamH: {Min: 50, Max: 1000, Default: 400},
	ParamT: {Min: 5, Max: 50, Default: 10},
	ParamE: {Min: 5, Max: 50, Default: 8},
}

var roundLimits = map[Param]Limit{
	ParamR: {Min: 10, Max: 500, Default: 100},
	ParamE: {Min: 2, Max: 50, Default: 5},
}

// InputLimit returns the input range for p on shape
func InputLimit(shape Shape, p Param) (Limit, bool) {
	var table map[Param]Limit
	switch shape {
	case Circle, HollowCircle:
		table = roundLimits
	case IBeam, TBeam, Rectangle, HollowRectangle:
		table = beamLimits
	default:
		return Limit{}, false
	}
	for _, rp := range RequiredDimensions(shape) {
		if rp == p {
			l, ok := table[p]
			return l, ok
		}
	}
	return Limit{}, false
}

// Defaults returns the default value of every parameter shape requires
func Defaults(shape Shape) Dimensions {
	dims := Dimensions{}
	for _, p := range RequiredDimensions(shape) {
		if l, ok := InputLimit(shape, p); ok {
			dims[p] = l.Default
		}
	}
	return dims
}

// OutOfRange lists the parameters of dims that fall outside the input limits
func OutOfRange(shape Shape, dims Dimensions) []Param {
	var out []Param
	for _, p := range RequiredDimensions(shape) {
		l, ok := InputLimit(shape, p)
		v, set := dims[p]
		if ok && set && !l.Contains(v) {
			out = append(out, p)
		}
	}
	return out
}
