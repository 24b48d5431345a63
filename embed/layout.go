package embed

import (
	"fmt"
	"math"
)

const (
	initialRadius = 10
	jiggleScale   = 1e-6
)

// initialAngle is the golden angle π(3 − √5).
var initialAngle = math.Pi * (3 - math.Sqrt(5))

type body struct {
	x, y, vx, vy float64
}

type spring struct {
	s, t     int
	rest     float64
	strength float64
	bias     float64
}

// Layout relaxes n nodes under links and co-location constraints and returns
// one Point per node index.
//
// Steps:
//  1. Validate options and endpoints.
//  2. Place nodes on a phyllotaxis spiral.
//  3. Derive per-spring strength and bias from node degrees.
//  4. Run Iterations ticks (springs, charge, centering, integration).
//
// Errors:
//   - ErrNegativeCount, ErrLinkOutOfRange, ErrBadOptions.
//
// Complexity: O(Iterations · (n² + L)).
func Layout(n int, links []Link, constraints [][2]int, opts Options) ([]Point, error) {
	// 1) Validate
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if n == 0 {
		return []Point{}, nil
	}

	all := make([]Link, 0, len(links)+len(constraints))
	for _, l := range links {
		if l.Distance <= 0 {
			l.Distance = opts.LinkDistance
		}
		all = append(all, l)
	}
	for _, c := range constraints {
		all = append(all, Link{Source: c[0], Target: c[1], Distance: opts.ConstraintDistance})
	}
	for _, l := range all {
		if l.Source < 0 || l.Source >= n || l.Target < 0 || l.Target >= n {
			return nil, fmt.Errorf("%w: %d→%d with %d nodes", ErrLinkOutOfRange, l.Source, l.Target, n)
		}
	}

	// 2) Phyllotaxis placement
	bodies := make([]body, n)
	for i := range bodies {
		r := initialRadius * math.Sqrt(0.5+float64(i))
		a := float64(i) * initialAngle
		bodies[i] = body{x: r * math.Cos(a), y: r * math.Sin(a)}
	}

	// 3) Degree-derived spring parameters
	deg := make([]int, n)
	for _, l := range all {
		deg[l.Source]++
		deg[l.Target]++
	}
	springs := make([]spring, len(all))
	for i, l := range all {
		ds, dt := float64(deg[l.Source]), float64(deg[l.Target])
		springs[i] = spring{
			s:        l.Source,
			t:        l.Target,
			rest:     l.Distance,
			strength: 1 / math.Min(ds, dt),
			bias:     ds / (ds + dt),
		}
	}

	// 4) Ticks
	sim := &simulation{bodies: bodies, springs: springs, opts: opts}
	alpha := 1.0
	alphaDecay := 0.0
	if opts.Iterations > 0 {
		alphaDecay = 1 - math.Pow(opts.AlphaMin, 1/float64(opts.Iterations))
	}
	for i := 0; i < opts.Iterations; i++ {
		alpha -= alpha * alphaDecay
		sim.tick(alpha)
	}

	out := make([]Point, n)
	for i, b := range bodies {
		out[i] = Point{X: b.x, Y: b.y}
	}

	return out, nil
}

type simulation struct {
	bodies  []body
	springs []spring
	opts    Options
}

func (s *simulation) tick(alpha float64) {
	s.applySprings(alpha)
	s.applyCharge(alpha)
	s.applyCenter()
	for i := range s.bodies {
		b := &s.bodies[i]
		b.vx *= s.opts.VelocityDecay
		b.vy *= s.opts.VelocityDecay
		b.x += b.vx
		b.y += b.vy
	}
}

func (s *simulation) jiggle() float64 {
	return (s.opts.Rand.Float64() - 0.5) * jiggleScale
}

// applySprings nudges velocities toward each spring's rest length, using the
// velocity-projected positions of this tick.
func (s *simulation) applySprings(alpha float64) {
	for _, sp := range s.springs {
		src, dst := &s.bodies[sp.s], &s.bodies[sp.t]
		x := dst.x + dst.vx - src.x - src.vx
		if x == 0 {
			x = s.jiggle()
		}
		y := dst.y + dst.vy - src.y - src.vy
		if y == 0 {
			y = s.jiggle()
		}
		l := math.Sqrt(x*x + y*y)
		l = (l - sp.rest) / l * alpha * sp.strength
		x *= l
		y *= l
		dst.vx -= x * sp.bias
		dst.vy -= y * sp.bias
		src.vx += x * (1 - sp.bias)
		src.vy += y * (1 - sp.bias)
	}
}

// applyCharge sums the exact pairwise force; each unordered pair is visited
// once and applied with opposite signs.
func (s *simulation) applyCharge(alpha float64) {
	if s.opts.Charge == 0 {
		return
	}
	min2 := s.opts.DistanceMin * s.opts.DistanceMin
	for i := 0; i < len(s.bodies); i++ {
		bi := &s.bodies[i]
		for j := i + 1; j < len(s.bodies); j++ {
			bj := &s.bodies[j]
			x := bj.x - bi.x
			y := bj.y - bi.y
			l := x*x + y*y
			if x == 0 {
				x = s.jiggle()
				l += x * x
			}
			if y == 0 {
				y = s.jiggle()
				l += y * y
			}
			if l < min2 {
				l = math.Sqrt(min2 * l)
			}
			w := s.opts.Charge * alpha / l
			bi.vx += x * w
			bi.vy += y * w
			bj.vx -= x * w
			bj.vy -= y * w
		}
	}
}

// applyCenter translates all positions so their mean is the configured centre.
func (s *simulation) applyCenter() {
	var sx, sy float64
	for _, b := range s.bodies {
		sx += b.x
		sy += b.y
	}
	n := float64(len(s.bodies))
	dx := sx/n - s.opts.CenterX
	dy := sy/n - s.opts.CenterY
	for i := range s.bodies {
		s.bodies[i].x -= dx
		s.bodies[i].y -= dy
	}
}
