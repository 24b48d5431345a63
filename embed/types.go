package embed

import (
	"errors"
	"math/rand"
)

var (
	// ErrNegativeCount indicates a negative node count.
	ErrNegativeCount = errors.New("embed: negative node count")

	// ErrLinkOutOfRange indicates a link or constraint endpoint outside [0, n).
	ErrLinkOutOfRange = errors.New("embed: link endpoint out of range")

	// ErrBadOptions indicates invalid relaxation parameters.
	ErrBadOptions = errors.New("embed: invalid options")
)

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Link is a spring between node indices. Distance ≤ 0 uses
// Options.LinkDistance.
type Link struct {
	Source   int
	Target   int
	Distance float64
}

// Rand is the jiggle source. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Options configures Layout.
type Options struct {
	// Iterations is the fixed number of ticks.
	Iterations int

	// LinkDistance is the rest length of flow links.
	LinkDistance float64

	// ConstraintDistance is the rest length of co-location links.
	ConstraintDistance float64

	// Charge is the pairwise strength; negative repels.
	Charge float64

	// CenterX, CenterY is where the centering force keeps the mean.
	CenterX, CenterY float64

	// VelocityDecay is the fraction of velocity kept after each tick.
	VelocityDecay float64

	// AlphaMin is the cooling floor reached after Iterations ticks.
	AlphaMin float64

	// DistanceMin floors the charge distance to bound the force.
	DistanceMin float64

	// Rand supplies jiggle; nil uses a fixed-seed source.
	Rand Rand
}

// DefaultOptions returns the standard relaxation schedule.
func DefaultOptions() Options {
	return Options{
		Iterations:         300,
		LinkDistance:       100,
		ConstraintDistance: 5,
		Charge:             -300,
		VelocityDecay:      0.6,
		AlphaMin:           0.001,
		DistanceMin:        1,
	}
}

func (o *Options) validate() error {
	switch {
	case o.Iterations < 0:
		return errors.Join(ErrBadOptions, errors.New("iterations must be ≥ 0"))
	case o.VelocityDecay < 0 || o.VelocityDecay > 1:
		return errors.Join(ErrBadOptions, errors.New("velocity decay must be in [0,1]"))
	case o.AlphaMin <= 0 || o.AlphaMin >= 1:
		return errors.Join(ErrBadOptions, errors.New("alpha min must be in (0,1)"))
	case o.DistanceMin <= 0:
		return errors.Join(ErrBadOptions, errors.New("distance min must be > 0"))
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}

	return nil
}
