package genetic

import (
	"errors"

	"github.com/katalvlaran/prodgraph/partition"
)

var (
	// ErrNoCandidate indicates the attempt loop ended without evaluating any
	// individual. It is a broken invariant, not a tuning problem.
	ErrNoCandidate = errors.New("genetic: search produced no candidate")

	// ErrBadOptions indicates invalid search parameters.
	ErrBadOptions = errors.New("genetic: invalid options")

	// ErrBadProblem indicates a problem whose links or pairs name unknown nodes.
	ErrBadProblem = errors.New("genetic: problem references unknown node")
)

// Weights scales the fitness terms.
type Weights struct {
	Constraints float64 `json:"constraints" yaml:"constraints" mapstructure:"constraints" validate:"gte=0"`
	Split       float64 `json:"split" yaml:"split" mapstructure:"split" validate:"gte=0"`
	Balance     float64 `json:"balance" yaml:"balance" mapstructure:"balance" validate:"gte=0"`
	Transport   float64 `json:"transport" yaml:"transport" mapstructure:"transport" validate:"gte=0"`
}

// Generation reports the best fitness after one generation.
type Generation struct {
	Attempt int
	Index   int
	Best    float64
}

// Options configures Evolve.
type Options struct {
	PopulationSize int
	Generations    int
	MutationRate   float64

	// K is the requested cluster count, clamped to [1, node count].
	K int

	Weights Weights

	// MinSize and MaxSize bound non-empty clusters; MaxSize ≤ 0 means no bound.
	MinSize int
	MaxSize int

	Attempts int

	EliteFraction       float64
	MinElite            int
	TournamentSize      int
	EmptyClusterPenalty float64

	// Rand drives every random choice; nil uses partition.DefaultSeed.
	Rand partition.Rand

	// OnGeneration, if set, is called after every evaluated generation.
	OnGeneration func(Generation)
}

// DefaultOptions returns a moderate search budget.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      50,
		Generations:         100,
		MutationRate:        0.05,
		K:                   3,
		Weights:             Weights{Constraints: 1000, Split: 1000, Balance: 10, Transport: 1},
		MinSize:             1,
		Attempts:            1,
		EliteFraction:       0.1,
		MinElite:            2,
		TournamentSize:      4,
		EmptyClusterPenalty: 500,
	}
}

// Outcome is the result of Evolve.
type Outcome struct {
	// Best is the lowest-fitness individual across all attempts.
	Best partition.Assignment

	// Fitness is Best's fitness.
	Fitness float64

	// Attempt is the attempt that produced Best.
	Attempt int

	// History holds, per attempt, the best fitness of the initial population
	// followed by each generation.
	History [][]float64
}

func (o *Options) validate() error {
	switch {
	case o.Generations < 0:
		return errors.Join(ErrBadOptions, errors.New("generations must be ≥ 0"))
	case o.MutationRate < 0 || o.MutationRate > 1:
		return errors.Join(ErrBadOptions, errors.New("mutation rate must be in [0,1]"))
	case o.EliteFraction < 0 || o.EliteFraction > 1:
		return errors.Join(ErrBadOptions, errors.New("elite fraction must be in [0,1]"))
	case o.MinElite < 1:
		return errors.Join(ErrBadOptions, errors.New("min elite must be ≥ 1"))
	case o.TournamentSize < 1:
		return errors.Join(ErrBadOptions, errors.New("tournament size must be ≥ 1"))
	case o.MinSize < 0:
		return errors.Join(ErrBadOptions, errors.New("min size must be ≥ 0"))
	case o.MaxSize > 0 && o.MaxSize < o.MinSize:
		return errors.Join(ErrBadOptions, errors.New("max size below min size"))
	}

	return nil
}
