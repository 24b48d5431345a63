package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/prodgraph/embed"
	"github.com/katalvlaran/prodgraph/planner"
)

const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
	DefaultMetricsNamespace = "prodgraph"
)

// setDefaults registers every key with viper so env overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	km := planner.DefaultKMeansParams()
	ga := planner.DefaultGeneticParams()
	em := embed.DefaultOptions()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("seed", 0)
	v.SetDefault("catalog", "")

	v.SetDefault("kmeans.k", km.K)
	v.SetDefault("kmeans.attempts", km.Attempts)

	v.SetDefault("genetic.population_size", ga.PopulationSize)
	v.SetDefault("genetic.generations", ga.Generations)
	v.SetDefault("genetic.mutation_rate", ga.MutationRate)
	v.SetDefault("genetic.k", ga.K)
	v.SetDefault("genetic.weights.constraints", ga.Weights.Constraints)
	v.SetDefault("genetic.weights.split", ga.Weights.Split)
	v.SetDefault("genetic.weights.balance", ga.Weights.Balance)
	v.SetDefault("genetic.weights.transport", ga.Weights.Transport)
	v.SetDefault("genetic.min_size", ga.MinSize)
	v.SetDefault("genetic.max_size", ga.MaxSize)
	v.SetDefault("genetic.attempts", ga.Attempts)

	v.SetDefault("embed.iterations", em.Iterations)
	v.SetDefault("embed.link_distance", em.LinkDistance)
	v.SetDefault("embed.constraint_distance", em.ConstraintDistance)
	v.SetDefault("embed.charge", em.Charge)
	v.SetDefault("embed.velocity_decay", em.VelocityDecay)
	v.SetDefault("embed.alpha_min", em.AlphaMin)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.output", "")
}

// ApplyDefaults fills zero fields that have no meaningful zero value. Explicit
// settings always win.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	km := planner.DefaultKMeansParams()
	if cfg.KMeans.K == 0 {
		cfg.KMeans.K = km.K
	}
	if cfg.KMeans.Attempts == 0 {
		cfg.KMeans.Attempts = km.Attempts
	}

	ga := planner.DefaultGeneticParams()
	if cfg.Genetic.PopulationSize == 0 {
		cfg.Genetic.PopulationSize = ga.PopulationSize
	}
	if cfg.Genetic.K == 0 {
		cfg.Genetic.K = ga.K
	}
	if cfg.Genetic.Attempts == 0 {
		cfg.Genetic.Attempts = ga.Attempts
	}

	em := embed.DefaultOptions()
	if cfg.Embed.LinkDistance == 0 {
		cfg.Embed.LinkDistance = em.LinkDistance
	}
	if cfg.Embed.ConstraintDistance == 0 {
		cfg.Embed.ConstraintDistance = em.ConstraintDistance
	}
	if cfg.Embed.AlphaMin == 0 {
		cfg.Embed.AlphaMin = em.AlphaMin
	}
}

// Default returns a fully defaulted Config without reading files or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults alone always decode.
	_ = v.Unmarshal(cfg)
	ApplyDefaults(cfg)

	return cfg
}
