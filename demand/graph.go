package demand

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/prodgraph/bfs"
	"github.com/katalvlaran/prodgraph/core"
	"github.com/katalvlaran/prodgraph/dfs"
)

// Graph is the resolved flow graph: nodes in first-visit order and merged
// edges in first-contribution order. It is owned by one Resolve call and never
// shared across calls.
type Graph struct {
	flow  *core.Graph
	nodes []*Node
	index map[string]int
}

func newGraph() *Graph {
	return &Graph{
		flow:  core.NewGraph(),
		index: make(map[string]int),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns copies of all nodes in first-visit order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}

	return out
}

// Node returns the node for item.
func (g *Graph) Node(item string) (Node, bool) {
	i, ok := g.index[item]
	if !ok {
		return Node{}, false
	}

	return *g.nodes[i], true
}

// Index returns the position of item in Nodes(), or -1.
func (g *Graph) Index(item string) int {
	if i, ok := g.index[item]; ok {
		return i
	}

	return -1
}

// Edges returns all flow edges in first-contribution order.
func (g *Graph) Edges() []Edge {
	raw := g.flow.Edges()
	out := make([]Edge, len(raw))
	for i, e := range raw {
		out[i] = Edge{Source: e.From, Target: e.To, Value: e.Weight}
	}

	return out
}

// EdgeCount returns the number of merged flow edges.
func (g *Graph) EdgeCount() int { return g.flow.EdgeCount() }

// TotalFlow sums the rates carried by all edges.
func (g *Graph) TotalFlow() float64 { return g.flow.TotalWeight() }

// Flow exposes the underlying core graph (items as vertices, rates as weights).
// Callers must not mutate it.
func (g *Graph) Flow() *core.Graph { return g.flow }

// Order returns item ids topologically: every input precedes the items made
// from it, so raw materials come first.
func (g *Graph) Order() ([]string, error) {
	order, err := dfs.TopologicalSort(g.flow)
	if err != nil {
		return nil, fmt.Errorf("demand: order: %w", err)
	}

	return order, nil
}

// Upstream lists every item that item transitively consumes, nearest first.
// Items at equal distance are sorted. An unknown item yields ErrUnknownItem.
func (g *Graph) Upstream(item string) ([]string, error) {
	return g.reach(item, bfs.WithReverse())
}

// Downstream lists every item that transitively consumes item, nearest first.
func (g *Graph) Downstream(item string) ([]string, error) {
	return g.reach(item)
}

func (g *Graph) reach(item string, opts ...bfs.Option) ([]string, error) {
	if _, ok := g.index[item]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	res, err := bfs.BFS(g.flow, item, opts...)
	if err != nil {
		return nil, fmt.Errorf("demand: reach %q: %w", item, err)
	}

	return res.Order[1:], nil
}

// BuildingLoad aggregates required machines per producing building.
type BuildingLoad struct {
	Building     string  `json:"building" yaml:"building"`
	BuildingName string  `json:"buildingName" yaml:"buildingName"`
	Machines     float64 `json:"machines" yaml:"machines"`
	Items        int     `json:"items" yaml:"items"`
}

// Buildings summarises machine counts per building, sorted by building id.
// Raw items are excluded.
func (g *Graph) Buildings() []BuildingLoad {
	acc := make(map[string]*BuildingLoad)
	for _, n := range g.nodes {
		if n.Raw {
			continue
		}
		bl, ok := acc[n.Building]
		if !ok {
			bl = &BuildingLoad{Building: n.Building, BuildingName: n.BuildingName}
			acc[n.Building] = bl
		}
		bl.Machines += n.Machines()
		bl.Items++
	}
	out := make([]BuildingLoad, 0, len(acc))
	for _, bl := range acc {
		out = append(out, *bl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Building < out[j].Building })

	return out
}

// visit returns the node for item, creating it on first visit.
func (g *Graph) visit(item string, create func() *Node) (*Node, error) {
	if i, ok := g.index[item]; ok {
		return g.nodes[i], nil
	}
	if err := g.flow.AddVertex(item); err != nil {
		return nil, err
	}
	n := create()
	g.index[item] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return n, nil
}

// TotalRequired sums Required over all nodes.
func (g *Graph) TotalRequired() float64 {
	var sum float64
	for _, n := range g.nodes {
		sum += n.Required
	}

	return sum
}
