// Package dfs implements cycle detection for directed core.Graphs.
// DetectCycles enumerates the simple cycles closed by back-edges using
// three-color marking, and canonicalises each one to its minimal rotation via
// Booth's algorithm so that the same loop found from different entry points is
// reported once. The final cycle list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/prodgraph/core"
)

// DetectCycles inspects the directed graph g for cycles.
// Returns (true, cycles, nil) if any are found, (false, nil, nil) otherwise.
// Each cycle is closed: its first vertex is repeated at the end.
// A nil graph is treated as cycle-free.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is cycle-free
	if g == nil {
		return false, nil, nil
	}
	if !g.Directed() {
		return false, nil, fmt.Errorf("dfs: DetectCycles requires directed graph")
	}

	// 2) Visitation state
	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	seen := make(map[string]struct{})
	var cycles [][]string

	// 3) Launch from each unvisited vertex
	for _, v := range verts {
		if state[v] != White {
			continue
		}
		if err := cycleVisit(g, v, state, &path, seen, &cycles); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	// 4) Deterministic order
	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// cycleVisit marks id Gray, explores successors and records every Gray→Gray back-edge.
func cycleVisit(
	g *core.Graph,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	state[id] = Gray
	*path = append(*path, id)

	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: Neighbors(%q): %v", ErrNeighborFetch, id, err)
	}
	for _, nb := range nbrs {
		switch state[nb] {
		case White:
			if err = cycleVisit(g, nb, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			recordCycle(nb, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts the path segment starting at start, canonicalises it
// and appends it to cycles unless an equal rotation was already recorded.
func recordCycle(start string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := IndexOf(path, start)
	if idx < 0 {
		return
	}
	rot := MinimalRotation(path[idx:])
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, closed)
}
