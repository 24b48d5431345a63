package genetic

import "github.com/katalvlaran/prodgraph/partition"

// Fitness scores ind against p; lower is better. k is opts.K clamped to the
// node count.
//
// Complexity: O(E + C + S + k).
func Fitness(ind partition.Assignment, p *partition.Problem, opts Options) float64 {
	w := opts.Weights

	// 1) Transport
	f := partition.CrossFlow(ind, p.Links) * w.Transport

	// 2) Co-location
	for _, pr := range p.Colocate {
		if ind[pr[0]] != ind[pr[1]] {
			f += w.Constraints
		}
	}

	// 3) Split
	f += float64(partition.SharedPairs(ind, p.Split)) * w.Split

	// 4) Balance
	k := partition.ClampK(opts.K, len(ind))
	for _, size := range partition.Sizes(ind, k) {
		switch {
		case size == 0:
			f += opts.EmptyClusterPenalty
		case size < opts.MinSize:
			f += float64(opts.MinSize-size) * w.Balance
		case opts.MaxSize > 0 && size > opts.MaxSize:
			f += float64(size-opts.MaxSize) * w.Balance
		}
	}

	return f
}
