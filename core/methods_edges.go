// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/Edges/EdgeCount/TotalWeight,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by creation sequence.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - AddEdge under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge adds weight to the edge from→to, creating the edge (and any missing
// endpoint) on first use. The returned string is the edge ID, which is stable
// across later merges into the same pair.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj; look up the pair.
//  4. Existing pair ⇒ Weight += weight. New pair ⇒ allocate ID, store, link adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight (negative, NaN, ±Inf), ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Merge or insert under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := g.key(from, to)
	if eid, ok := g.pairs[k]; ok {
		g.edges[eid].Weight += weight
		return eid, nil
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e
	g.pairs[k] = eid
	ensureAdjacency(g, from)
	g.adjacencyList[from][to] = eid
	if !g.directed && from != to {
		ensureAdjacency(g, to)
		g.adjacencyList[to][from] = eid
	}

	return eid, nil
}

// Edges returns copies of all edges sorted by creation sequence.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of distinct endpoint pairs carrying an edge.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// nextEdgeID returns the next textual edge ID ("e1", "e2", ...).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence from an edge ID.
func edgeSeq(id string) uint64 {
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}

// sortEdges orders edges by creation sequence, not by lexicographic ID
// ("e10" must follow "e9").
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}
