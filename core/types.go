// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex, and Edge types used to
// hold production flow graphs, and provides thread-safe primitives for
// building and querying them.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be shared across goroutines
// with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrBadWeight       - negative, NaN or infinite weight.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight that is negative, NaN or infinite.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents an accumulated connection between two vertices.
//
// There is at most one Edge per (From, To) pair; repeated AddEdge calls for the
// same pair add into Weight instead of creating parallel edges.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ... in creation order).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the accumulated value carried by the edge (e.g. an item rate).
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges, the pair index and
// adjacency. Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, pairs and adjacency

	// Configuration flags
	directed   bool // edge orientation
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge
	pairs      map[pairKey]string // (from,to) → edge ID

	// adjacencyList[from][to] = edge ID; undirected edges are mirrored.
	adjacencyList map[string]map[string]string
}

// pairKey identifies the single edge allowed between two endpoints.
type pairKey struct {
	from, to string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:      true,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		pairs:         make(map[pairKey]string),
		adjacencyList: make(map[string]map[string]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// key returns the canonical pair key for from→to under the graph's orientation.
// Undirected graphs order the endpoints so (a,b) and (b,a) collide.
func (g *Graph) key(from, to string) pairKey {
	if !g.directed && to < from {
		return pairKey{from: to, to: from}
	}

	return pairKey{from: from, to: to}
}
