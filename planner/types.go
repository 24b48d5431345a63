package planner

import (
	"errors"
	"time"

	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/genetic"
	"github.com/katalvlaran/prodgraph/partition"
)

var (
	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("planner: invalid request")

	// ErrFatal marks unrecoverable failures: a broken optimizer invariant or a
	// panic inside the computation.
	ErrFatal = errors.New("planner: fatal")

	// ErrPending is returned by Job.Result before the job completes.
	ErrPending = errors.New("planner: job still running")
)

// Method selects the optimizer.
type Method string

const (
	// MethodNone resolves demand without clustering.
	MethodNone Method = ""

	// MethodKMeans embeds the graph and runs k-means.
	MethodKMeans Method = "kmeans"

	// MethodGenetic runs the evolutionary search.
	MethodGenetic Method = "genetic"
)

// KMeansParams configures a k-means run. Colocate only shapes the embedding.
type KMeansParams struct {
	K        int              `json:"k" yaml:"k" mapstructure:"k" validate:"gte=1"`
	Attempts int              `json:"attempts" yaml:"attempts" mapstructure:"attempts" validate:"gte=1"`
	Split    []partition.Pair `json:"split,omitempty" yaml:"split,omitempty" mapstructure:"split" validate:"dive"`
	Colocate []partition.Pair `json:"colocate,omitempty" yaml:"colocate,omitempty" mapstructure:"colocate" validate:"dive"`
}

// GeneticParams configures an evolutionary run. MaxSize 0 means unbounded.
type GeneticParams struct {
	PopulationSize int              `json:"populationSize" yaml:"populationSize" mapstructure:"population_size" validate:"gte=1"`
	Generations    int              `json:"generations" yaml:"generations" mapstructure:"generations" validate:"gte=0"`
	MutationRate   float64          `json:"mutationRate" yaml:"mutationRate" mapstructure:"mutation_rate" validate:"gte=0,lte=1"`
	K              int              `json:"k" yaml:"k" mapstructure:"k" validate:"gte=1"`
	Weights        genetic.Weights  `json:"weights" yaml:"weights" mapstructure:"weights"`
	Colocate       []partition.Pair `json:"colocate,omitempty" yaml:"colocate,omitempty" mapstructure:"colocate" validate:"dive"`
	Split          []partition.Pair `json:"split,omitempty" yaml:"split,omitempty" mapstructure:"split" validate:"dive"`
	MinSize        int              `json:"minSize" yaml:"minSize" mapstructure:"min_size" validate:"gte=0"`
	MaxSize        int              `json:"maxSize" yaml:"maxSize" mapstructure:"max_size" validate:"gte=0"`
	Attempts       int              `json:"attempts" yaml:"attempts" mapstructure:"attempts" validate:"gte=1"`
}

// Request is one planning invocation. Seed 0 draws a time-seeded source.
type Request struct {
	Targets []demand.Target `json:"targets" yaml:"targets" validate:"dive"`
	Method  Method          `json:"method,omitempty" yaml:"method,omitempty" validate:"omitempty,oneof=kmeans genetic"`
	KMeans  KMeansParams    `json:"kmeans" yaml:"kmeans" validate:"-"`
	Genetic GeneticParams   `json:"genetic" yaml:"genetic" validate:"-"`
	Seed    int64           `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultKMeansParams returns k=3 with 10 attempts.
func DefaultKMeansParams() KMeansParams {
	return KMeansParams{K: 3, Attempts: 10}
}

// DefaultGeneticParams mirrors genetic.DefaultOptions.
func DefaultGeneticParams() GeneticParams {
	d := genetic.DefaultOptions()

	return GeneticParams{
		PopulationSize: d.PopulationSize,
		Generations:    d.Generations,
		MutationRate:   d.MutationRate,
		K:              d.K,
		Weights:        d.Weights,
		MinSize:        d.MinSize,
		MaxSize:        d.MaxSize,
		Attempts:       d.Attempts,
	}
}

// Run statuses reported to a Recorder.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
	StatusFatal   = "fatal"
)

// RunReport summarises one finished run.
type RunReport struct {
	RunID     string
	Method    Method
	Status    string
	Duration  time.Duration
	Nodes     int
	CrossFlow float64
}

// Recorder receives one report per run.
type Recorder interface {
	ObserveRun(RunReport)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(RunReport)

// ObserveRun calls f.
func (f RecorderFunc) ObserveRun(r RunReport) { f(r) }

type nopRecorder struct{}

func (nopRecorder) ObserveRun(RunReport) {}
