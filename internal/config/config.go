// Package config loads command line settings from a YAML file and
// PRODGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/prodgraph/embed"
	"github.com/katalvlaran/prodgraph/internal/logging"
	"github.com/katalvlaran/prodgraph/partition"
	"github.com/katalvlaran/prodgraph/planner"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Log logging.Config `mapstructure:"log" yaml:"log"`

	// Seed fixes the optimizers' random source; 0 draws a fresh one per run.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// Catalog is the default catalog path for commands that take none.
	Catalog string `mapstructure:"catalog" yaml:"catalog"`

	KMeans  planner.KMeansParams  `mapstructure:"kmeans" yaml:"kmeans"`
	Genetic planner.GeneticParams `mapstructure:"genetic" yaml:"genetic"`
	Embed   EmbedConfig           `mapstructure:"embed" yaml:"embed"`
	Metrics MetricsConfig         `mapstructure:"metrics" yaml:"metrics"`
}

// EmbedConfig tunes the force layout that precedes k-means.
type EmbedConfig struct {
	Iterations         int     `mapstructure:"iterations" yaml:"iterations" validate:"gte=0"`
	LinkDistance       float64 `mapstructure:"link_distance" yaml:"link_distance" validate:"gt=0"`
	ConstraintDistance float64 `mapstructure:"constraint_distance" yaml:"constraint_distance" validate:"gt=0"`
	Charge             float64 `mapstructure:"charge" yaml:"charge"`
	VelocityDecay      float64 `mapstructure:"velocity_decay" yaml:"velocity_decay" validate:"gte=0,lte=1"`
	AlphaMin           float64 `mapstructure:"alpha_min" yaml:"alpha_min" validate:"gt=0,lt=1"`
}

// MetricsConfig controls the run metrics dump.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Namespace string `mapstructure:"namespace" yaml:"namespace"`

	// Output is where the text exposition is written after a run; "-" is stdout.
	Output string `mapstructure:"output" yaml:"output"`
}

type logRules struct {
	Level  string `validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	Format string `validate:"oneof=json console"`
}

// Validate checks every section.
func (c *Config) Validate() error {
	v := validator.New()
	var errs []error
	check := func(section string, s interface{}) {
		if err := v.Struct(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
	}
	check("log", logRules{Level: c.Log.Level, Format: c.Log.Format})
	check("kmeans", c.KMeans)
	check("genetic", c.Genetic)
	check("embed", c.Embed)
	if c.Genetic.MaxSize > 0 && c.Genetic.MaxSize < c.Genetic.MinSize {
		errs = append(errs, fmt.Errorf("genetic: max_size %d below min_size %d", c.Genetic.MaxSize, c.Genetic.MinSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// EmbedOptions converts the embed section.
func (c *Config) EmbedOptions() embed.Options {
	o := embed.DefaultOptions()
	o.Iterations = c.Embed.Iterations
	o.LinkDistance = c.Embed.LinkDistance
	o.ConstraintDistance = c.Embed.ConstraintDistance
	o.Charge = c.Embed.Charge
	o.VelocityDecay = c.Embed.VelocityDecay
	o.AlphaMin = c.Embed.AlphaMin

	return o
}

// KMeansParams returns a copy of the kmeans section.
func (c *Config) KMeansParams() planner.KMeansParams {
	p := c.KMeans
	p.Split = append([]partition.Pair(nil), c.KMeans.Split...)
	p.Colocate = append([]partition.Pair(nil), c.KMeans.Colocate...)

	return p
}

// GeneticParams returns a copy of the genetic section.
func (c *Config) GeneticParams() planner.GeneticParams {
	p := c.Genetic
	p.Split = append([]partition.Pair(nil), c.Genetic.Split...)
	p.Colocate = append([]partition.Pair(nil), c.Genetic.Colocate...)

	return p
}
