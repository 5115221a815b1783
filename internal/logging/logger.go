// Package logging builds the zap loggers used by the gosas commands.
package logging

import (
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production (JSON, stderr) logger; verbose lowers the level to debug
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Sampling = nil
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// Section returns the fields describing a section instance
func Section(inst section.Instance) []zap.Field {
	fields := []zap.Field{zap.Stringer("shape", inst.Shape)}
	for _, p := range section.RequiredDimensions(inst.Shape) {
		if v, ok := inst.Dimensions[p]; ok {
			fields = append(fields, zap.Float64("dim_"+string(p), v))
		}
	}
	return fields
}

// Result returns the fields describing a computation result
func Result(res *stress.Result) []zap.Field {
	return []zap.Field{
		zap.String("material", string(res.Material.ID)),
		zap.Float64("area_mm2", res.Area),
		zap.Float64("force_n", res.Force),
		zap.Float64("stress_mpa", res.Stress),
		zap.Float64("strain", res.Strain),
	}
}
