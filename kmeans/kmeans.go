package kmeans

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/prodgraph/embed"
	"github.com/katalvlaran/prodgraph/partition"
)

var (
	// ErrBadAttempts indicates an attempt budget below one.
	ErrBadAttempts = errors.New("kmeans: attempts must be ≥ 1")

	// ErrBadRounds indicates a round limit below one.
	ErrBadRounds = errors.New("kmeans: max rounds must be ≥ 1")

	// ErrPairOutOfRange indicates a split pair naming an unknown node index.
	ErrPairOutOfRange = errors.New("kmeans: split pair out of range")
)

// Options configures Partition.
type Options struct {
	// K is the requested cluster count, clamped to [1, len(points)].
	K int

	// Attempts is the number of independent restarts.
	Attempts int

	// MaxRounds bounds Lloyd iterations per attempt.
	MaxRounds int

	// SplitPenalty is added per split pair sharing a cluster.
	SplitPenalty float64

	// Rand drives seed selection; nil uses partition.DefaultSeed.
	Rand partition.Rand
}

// DefaultOptions returns K=3, 10 attempts, 50 rounds, penalty 10000.
func DefaultOptions() Options {
	return Options{
		K:            3,
		Attempts:     10,
		MaxRounds:    50,
		SplitPenalty: 10000,
	}
}

// Score is the k-means objective: cross-cluster flow plus penalty for every
// split pair whose nodes share a cluster.
func Score(assign partition.Assignment, links []partition.Link, splits [][2]int, penalty float64) float64 {
	return partition.CrossFlow(assign, links) + penalty*float64(partition.SharedPairs(assign, splits))
}

// Partition returns the best assignment over opts.Attempts restarts and its
// score. Ties between attempts keep the earlier one.
//
// Empty points yield (nil, 0, nil): no clustering.
//
// Errors:
//   - ErrBadAttempts, ErrBadRounds, ErrPairOutOfRange.
//
// Complexity: O(Attempts · MaxRounds · n · k + Attempts · (E + S)).
func Partition(points []embed.Point, links []partition.Link, splits [][2]int, opts Options) (partition.Assignment, float64, error) {
	// 1) Validate
	if opts.Attempts < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadAttempts, opts.Attempts)
	}
	if opts.MaxRounds < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadRounds, opts.MaxRounds)
	}
	n := len(points)
	for _, pr := range splits {
		if pr[0] < 0 || pr[0] >= n || pr[1] < 0 || pr[1] >= n {
			return nil, 0, fmt.Errorf("%w: %v with %d nodes", ErrPairOutOfRange, pr, n)
		}
	}
	if n == 0 {
		return nil, 0, nil
	}

	// 2) Restarts
	k := partition.ClampK(opts.K, n)
	rng := partition.OrDefault(opts.Rand)
	var (
		best      partition.Assignment
		bestScore = math.Inf(1)
	)
	for a := 0; a < opts.Attempts; a++ {
		assign := lloyd(points, k, opts.MaxRounds, rng)
		score := Score(assign, links, splits, opts.SplitPenalty)
		if score < bestScore {
			best, bestScore = assign, score
		}
	}

	return best, bestScore, nil
}

// lloyd runs one attempt from shuffled seeds.
func lloyd(points []embed.Point, k, maxRounds int, rng partition.Rand) partition.Assignment {
	n := len(points)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	centroids := make([]embed.Point, k)
	for c := 0; c < k; c++ {
		centroids[c] = points[order[c]]
	}

	assign := make(partition.Assignment, n)
	for i := range assign {
		assign[i] = -1
	}
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	count := make([]int, k)

	for round := 0; round < maxRounds; round++ {
		changed := false
		for i, p := range points {
			c := nearest(p, centroids)
			if assign[i] != c {
				assign[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}

		for c := range centroids {
			sumX[c], sumY[c], count[c] = 0, 0, 0
		}
		for i, p := range points {
			c := assign[i]
			sumX[c] += p.X
			sumY[c] += p.Y
			count[c]++
		}
		for c := range centroids {
			if count[c] > 0 {
				centroids[c] = embed.Point{X: sumX[c] / float64(count[c]), Y: sumY[c] / float64(count[c])}
			}
		}
	}

	return assign
}

// nearest returns the index of the closest centroid; the first wins ties.
func nearest(p embed.Point, centroids []embed.Point) int {
	best, bestD := 0, math.Inf(1)
	for c, q := range centroids {
		dx, dy := p.X-q.X, p.Y-q.Y
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD = c, d
		}
	}

	return best
}
