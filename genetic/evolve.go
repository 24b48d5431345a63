package genetic

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/prodgraph/partition"
)

type scored struct {
	genes   partition.Assignment
	fitness float64
}

// search carries the state shared by all attempts of one Evolve call.
type search struct {
	p     *partition.Problem
	opts  Options
	k     int
	rng   partition.Rand
	elite int

	best    *scored
	attempt int
}

// Evolve runs opts.Attempts independent searches and returns the best
// individual seen. An empty problem returns a zero Outcome.
//
// Errors:
//   - ErrBadOptions, ErrBadProblem.
//   - ErrNoCandidate if no individual was ever evaluated
//     (PopulationSize < 1 or Attempts < 1).
//
// Complexity: O(Attempts · Generations · PopulationSize · (n + E + C + S)).
func Evolve(p *partition.Problem, opts Options) (Outcome, error) {
	// 1) Validate
	if err := opts.validate(); err != nil {
		return Outcome{}, err
	}
	if p == nil || p.Len() == 0 {
		return Outcome{}, nil
	}
	if err := checkProblem(p); err != nil {
		return Outcome{}, err
	}

	// 2) Shared state
	s := &search{
		p:    p,
		opts: opts,
		k:    partition.ClampK(opts.K, p.Len()),
		rng:  partition.OrDefault(opts.Rand),
	}
	s.opts.K = s.k
	s.elite = eliteCount(opts.PopulationSize, opts.EliteFraction, opts.MinElite)

	// 3) Attempts
	out := Outcome{History: make([][]float64, 0, max(opts.Attempts, 0))}
	for a := 0; a < opts.Attempts; a++ {
		out.History = append(out.History, s.run(a))
	}

	// 4) Invariant
	if s.best == nil {
		return Outcome{}, fmt.Errorf("%w: population %d, attempts %d", ErrNoCandidate, opts.PopulationSize, opts.Attempts)
	}
	out.Best = s.best.genes.Clone()
	out.Fitness = s.best.fitness
	out.Attempt = s.attempt

	return out, nil
}

// run performs one attempt and returns its per-generation best fitness.
func (s *search) run(attempt int) []float64 {
	size := s.opts.PopulationSize
	if size < 1 {
		return nil
	}
	history := make([]float64, 0, s.opts.Generations+1)

	pop := make([]scored, size)
	for i := range pop {
		pop[i].genes = s.randomIndividual()
	}
	history = append(history, s.evaluate(pop, attempt, 0))

	for gen := 1; gen <= s.opts.Generations; gen++ {
		next := make([]scored, 0, size)
		for i := 0; i < s.elite; i++ {
			next = append(next, scored{genes: pop[i].genes.Clone()})
		}
		for len(next) < size {
			a := s.tournament(pop)
			b := s.tournament(pop)
			child := s.crossover(pop[a].genes, pop[b].genes)
			s.mutate(child)
			next = append(next, scored{genes: child})
		}
		pop = next
		history = append(history, s.evaluate(pop, attempt, gen))
	}

	return history
}

// evaluate scores and sorts pop ascending, tracks the global best and returns
// the generation best.
func (s *search) evaluate(pop []scored, attempt, gen int) float64 {
	for i := range pop {
		pop[i].fitness = Fitness(pop[i].genes, s.p, s.opts)
	}
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].fitness < pop[j].fitness })

	top := pop[0]
	if s.best == nil || top.fitness < s.best.fitness {
		s.best = &scored{genes: top.genes.Clone(), fitness: top.fitness}
		s.attempt = attempt
	}
	if s.opts.OnGeneration != nil {
		s.opts.OnGeneration(Generation{Attempt: attempt, Index: gen, Best: top.fitness})
	}

	return top.fitness
}

func (s *search) randomIndividual() partition.Assignment {
	genes := make(partition.Assignment, s.p.Len())
	for i := range genes {
		genes[i] = s.rng.Intn(s.k)
	}

	return genes
}

// tournament samples TournamentSize indices with replacement from the sorted
// population and returns the fittest, which is the smallest index.
func (s *search) tournament(pop []scored) int {
	best := math.MaxInt
	for i := 0; i < s.opts.TournamentSize; i++ {
		if j := s.rng.Intn(len(pop)); j < best {
			best = j
		}
	}

	return best
}

// crossover takes each gene from a or b with equal probability.
func (s *search) crossover(a, b partition.Assignment) partition.Assignment {
	child := make(partition.Assignment, len(a))
	for i := range child {
		if s.rng.Float64() < 0.5 {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
	}

	return child
}

// mutate replaces each gene with a random cluster with probability MutationRate.
func (s *search) mutate(genes partition.Assignment) {
	for i := range genes {
		if s.rng.Float64() < s.opts.MutationRate {
			genes[i] = s.rng.Intn(s.k)
		}
	}
}

// eliteCount is ⌊size·fraction⌋, at least minElite, at most size.
func eliteCount(size int, fraction float64, minElite int) int {
	n := int(math.Floor(float64(size) * fraction))
	if n < minElite {
		n = minElite
	}
	if n > size {
		n = size
	}

	return n
}

func checkProblem(p *partition.Problem) error {
	n := p.Len()
	in := func(i int) bool { return i >= 0 && i < n }
	for _, l := range p.Links {
		if !in(l.Source) || !in(l.Target) {
			return fmt.Errorf("%w: link %d→%d", ErrBadProblem, l.Source, l.Target)
		}
	}
	for _, group := range [][][2]int{p.Colocate, p.Split} {
		for _, pr := range group {
			if !in(pr[0]) || !in(pr[1]) {
				return fmt.Errorf("%w: pair %v", ErrBadProblem, pr)
			}
		}
	}

	return nil
}
