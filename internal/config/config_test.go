package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodgraph/internal/config"
	"github.com/katalvlaran/prodgraph/partition"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prodgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3, cfg.KMeans.K)
	assert.Equal(t, 10, cfg.KMeans.Attempts)
	assert.Equal(t, 50, cfg.Genetic.PopulationSize)
	assert.Equal(t, 1.0, cfg.Genetic.Weights.Transport)
	assert.Equal(t, 300, cfg.Embed.Iterations)
	assert.Equal(t, -300.0, cfg.Embed.Charge)
	assert.NoError(t, cfg.Validate())

	eo := cfg.EmbedOptions()
	assert.Equal(t, 100.0, eo.LinkDistance)
	assert.Equal(t, 0.6, eo.VelocityDecay)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
seed: 42
kmeans:
  k: 4
  attempts: 6
  split:
    - {a: bar, b: glass}
genetic:
  population_size: 30
  weights:
    split: 250
embed:
  iterations: 120
metrics:
  enabled: true
  output: "-"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 4, cfg.KMeans.K)
	assert.Equal(t, []partition.Pair{{A: "bar", B: "glass"}}, cfg.KMeansParams().Split)
	assert.Equal(t, 30, cfg.Genetic.PopulationSize)
	assert.Equal(t, 250.0, cfg.Genetic.Weights.Split)
	assert.Equal(t, 1000.0, cfg.Genetic.Weights.Constraints, "unset keys keep defaults")
	assert.Equal(t, 120, cfg.Embed.Iterations)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "-", cfg.Metrics.Output)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRODGRAPH_KMEANS_K", "7")
	t.Setenv("PRODGRAPH_GENETIC_POPULATION_SIZE", "12")
	t.Setenv("PRODGRAPH_SEED", "5")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.KMeans.K)
	assert.Equal(t, 12, cfg.Genetic.PopulationSize)
	assert.Equal(t, int64(5), cfg.Seed)

	path := writeFile(t, "kmeans:\n  k: 2\n")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.KMeans.K, "env wins over file")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "genetic:\n  mutation_rate: 1.5\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "genetic:\n  min_size: 5\n  max_size: 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestApplyDefaults_KeepsExplicit(t *testing.T) {
	cfg := &config.Config{}
	cfg.KMeans.K = 9
	config.ApplyDefaults(cfg)
	assert.Equal(t, 9, cfg.KMeans.K)
	assert.Equal(t, 10, cfg.KMeans.Attempts)
	assert.Equal(t, "console", cfg.Log.Format)

	config.ApplyDefaults(nil)
}

func TestParamsAreCopies(t *testing.T) {
	cfg := config.Default()
	cfg.Genetic.Split = []partition.Pair{{A: "a", B: "b"}}
	p := cfg.GeneticParams()
	p.Split[0].A = "z"
	assert.Equal(t, "a", cfg.Genetic.Split[0].A)
}
