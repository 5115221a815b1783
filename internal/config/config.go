// Package config loads default inputs for gosas from a YAML file,
// GOSAS_* environment variables and command-line flags using Viper.
//
// Example .gosas.yaml:
//
//	material: aluminum
//	section: I-beam
//	dimensions:
//	  b: 150
//	  h: 300
//	force: 75000
//	curve:
//	  max_strain: 0.004
//	  points: 9
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GOSAS_FORCE
const EnvPrefix = "GOSAS"

// Config holds the default inputs of a computation
type Config struct {
	Material   string             `mapstructure:"material"`
	Section    string             `mapstructure:"section"`
	Dimensions map[string]float64 `mapstructure:"dimensions"` // mm, overrides the shape defaults
	Force      float64            `mapstructure:"force"`      // N
	Curve      CurveConfig        `mapstructure:"curve"`
}

// CurveConfig controls the stress-strain sample
type CurveConfig struct {
	MaxStrain float64 `mapstructure:"max_strain"`
	Points    int     `mapstructure:"points"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Material: string(material.Steel),
		Section:  section.Rectangle.String(),
		Force:    stress.ForceLimit.Default,
		Curve: CurveConfig{
			MaxStrain: stress.DefaultMaxStrain,
			Points:    stress.DefaultPoints,
		},
	}
}

// SetDefaults registers the built-in defaults on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("material", d.Material)
	v.SetDefault("section", d.Section)
	v.SetDefault("force", d.Force)
	v.SetDefault("curve.max_strain", d.Curve.MaxStrain)
	v.SetDefault("curve.points", d.Curve.Points)
}

// Init points v at the configuration file and environment.
//
// File priority: cfgFile (the --config flag), then GOSAS_CONFIG_FILE, then
// .gosas.yaml in the working directory. A missing default file is not an
// error; a missing explicit file is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if envFile := os.Getenv(EnvPrefix + "_CONFIG_FILE"); envFile != "" {
		v.SetConfigFile(envFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".gosas")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every configured value against the registries and domains
func (c *Config) Validate() error {
	if _, err := material.ParseID(c.Material); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := section.ParseShape(c.Section); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for k, v := range c.Dimensions {
		if _, err := section.ParseParam(k); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if v <= 0 {
			return fmt.Errorf("config: dimension %s must be positive, got %g", k, v)
		}
	}
	if c.Force <= 0 {
		return fmt.Errorf("config: force must be positive, got %g", c.Force)
	}
	if c.Curve.MaxStrain <= 0 {
		return fmt.Errorf("config: curve.max_strain must be positive, got %g", c.Curve.MaxStrain)
	}
	if c.Curve.Points < 2 {
		return fmt.Errorf("config: curve.points must be at least 2, got %d", c.Curve.Points)
	}
	return nil
}

// Shape returns the configured section shape
func (c *Config) Shape() (section.Shape, error) {
	return section.ParseShape(c.Section)
}

// MaterialID returns the configured material identifier
func (c *Config) MaterialID() (material.ID, error) {
	return material.ParseID(c.Material)
}

// DimensionsFor returns the defaults of shape overlaid with the configured
// dimensions that shape uses
func (c *Config) DimensionsFor(shape section.Shape) section.Dimensions {
	dims := section.Defaults(shape)
	for _, p := range section.RequiredDimensions(shape) {
		if v, ok := c.Dimensions[string(p)]; ok {
			dims[p] = v
		}
	}
	return dims
}
