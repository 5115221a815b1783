package section

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredDimensions(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []Param
	}{
		{Rectangle, []Param{ParamB, ParamH}},
		{IBeam, []Param{ParamB, ParamH, ParamT, ParamE}},
		{TBeam, []Param{ParamB, ParamH, ParamT, ParamE}},
		{HollowRectangle, []Param{ParamB, ParamH, ParamT, ParamE}},
		{Circle, []Param{ParamR}},
		{HollowCircle, []Param{ParamR, ParamE}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredDimensions(tt.shape))
		})
	}

	assert.Nil(t, RequiredDimensions(shapeInvalid))
}

func TestArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		dims  Dimensions
		want  float64
	}{
		{"rectangle 200x400", Rectangle, Dimensions{ParamB: 200, ParamH: 400}, 80000},
		{"I-beam", IBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 8}, 2*200*10 + 380*8},
		{"T-beam", TBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 8}, 200*10 + 390*8},
		{"hollow rectangle", HollowRectangle, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 8}, 200*400 - 180*384},
		{"circle", Circle, Dimensions{ParamR: 100}, math.Pi * 10000},
		{"hollow circle", HollowCircle, Dimensions{ParamR: 100, ParamE: 5}, math.Pi * (10000 - 9025)},
		{"unused parameters ignored", Circle, Dimensions{ParamR: 1, ParamB: -5}, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Area(tt.shape, tt.dims)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAreaInvalidDimensions(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		dims    Dimensions
		param   Param
		missing bool
	}{
		{"missing height", Rectangle, Dimensions{ParamB: 200}, ParamH, true},
		{"zero width", Rectangle, Dimensions{ParamB: 0, ParamH: 400}, ParamB, false},
		{"negative radius", Circle, Dimensions{ParamR: -1}, ParamR, false},
		{"NaN radius", Circle, Dimensions{ParamR: math.NaN()}, ParamR, false},
		{"infinite width", Rectangle, Dimensions{ParamB: math.Inf(1), ParamH: 1}, ParamB, false},
		{"I-beam flanges fill height", IBeam, Dimensions{ParamB: 200, ParamH: 20, ParamT: 10, ParamE: 8}, ParamT, false},
		{"I-beam web wider than flange", IBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 200}, ParamE, false},
		{"T-beam flange too thick", TBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 400, ParamE: 8}, ParamT, false},
		{"T-beam web too wide", TBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 250}, ParamE, false},
		{"hollow rectangle side walls", HollowRectangle, Dimensions{ParamB: 20, ParamH: 400, ParamT: 10, ParamE: 8}, ParamT, false},
		{"hollow rectangle top walls", HollowRectangle, Dimensions{ParamB: 200, ParamH: 16, ParamT: 10, ParamE: 8}, ParamE, false},
		{"hollow circle wall equals radius", HollowCircle, Dimensions{ParamR: 5, ParamE: 5}, ParamE, false},
		{"hollow circle missing wall", HollowCircle, Dimensions{ParamR: 5}, ParamE, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Area(tt.shape, tt.dims)
			require.Error(t, err)
			assert.Zero(t, got)

			var dimErr *InvalidDimensionError
			require.True(t, errors.As(err, &dimErr), "got %T", err)
			assert.Equal(t, tt.param, dimErr.Param)
			assert.Equal(t, tt.shape, dimErr.Shape)
			assert.Equal(t, tt.missing, dimErr.Missing)
			assert.Contains(t, err.Error(), string(tt.param))
		})
	}
}

func TestAreaUnknownShape(t *testing.T) {
	_, err := Area(shapeInvalid, Dimensions{ParamB: 1, ParamH: 1})
	assert.Error(t, err)
}

func TestAreaOverflow(t *testing.T) {
	_, err := Area(Rectangle, Dimensions{ParamB: math.MaxFloat64, ParamH: 10})
	var dimErr *InvalidDimensionError
	assert.ErrorAs(t, err, &dimErr)
}

func TestOutlineMatchesArea(t *testing.T) {
	tests := []struct {
		shape Shape
		dims  Dimensions
		tol   float64
	}{
		{Rectangle, Dimensions{ParamB: 200, ParamH: 400}, 1e-9},
		{IBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 8}, 1e-9},
		{TBeam, Dimensions{ParamB: 150, ParamH: 300, ParamT: 12, ParamE: 9}, 1e-9},
		{HollowRectangle, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 8}, 1e-9},
		// 72-gon inscribed in the circle
		{Circle, Dimensions{ParamR: 100}, 0.002},
		{HollowCircle, Dimensions{ParamR: 100, ParamE: 5}, 0.002},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			inst, err := NewInstance(tt.shape, tt.dims)
			require.NoError(t, err)

			loops, err := inst.Outline()
			require.NoError(t, err)
			require.NotEmpty(t, loops)
			assert.Greater(t, polygonArea(loops[0]), 0.0, "outer loop must be counter-clockwise")

			area, err := inst.Area()
			require.NoError(t, err)
			assert.InEpsilon(t, area, OutlineArea(loops), tt.tol)
		})
	}
}

func TestOutlineBounds(t *testing.T) {
	inst, err := NewInstance(IBeam, Dimensions{ParamB: 200, ParamH: 400, ParamT: 10, ParamE: 8})
	require.NoError(t, err)

	loops, err := inst.Outline()
	require.NoError(t, err)

	minX, minY, maxX, maxY := Bounds(loops)
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 200.0, maxX)
	assert.Equal(t, 400.0, maxY)
}

func TestNewInstanceCopiesDimensions(t *testing.T) {
	dims := Dimensions{ParamB: 200, ParamH: 400}
	inst, err := NewInstance(Rectangle, dims)
	require.NoError(t, err)

	dims[ParamB] = -1
	area, err := inst.Area()
	require.NoError(t, err)
	assert.Equal(t, 80000.0, area)

	_, err = NewInstance(Rectangle, Dimensions{ParamB: 1})
	assert.Error(t, err)
}
