// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, NeighborIDs) and adjacency bookkeeping.
// Determinism:
//   - Neighbors(id) returns edges sorted by creation sequence.
//   - NeighborIDs(id) returns IDs sorted lexicographically.

package core

import "sort"

// Neighbors returns the edges leaving id (directed) or incident to id
// (undirected), sorted by creation sequence. Returned edges are copies.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		if e, ok := g.edges[eid]; ok {
			out = append(out, *e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id, sorted lexicographically.
// For directed graphs only successors are included.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.From == id {
			ids = append(ids, e.To)
		} else {
			ids = append(ids, e.From)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency creates the inner adjacency map of from if missing.
// Caller must hold muEdgeAdj.
func ensureAdjacency(g *Graph, from string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]string)
	}
}
