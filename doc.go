// Package prodgraph turns production targets into a flow graph of items and
// the machines that make them, then splits that graph into clusters that keep
// heavy item flows inside one cluster.
//
// What is prodgraph?
//
//	A small planning toolkit that brings together:
//		• Catalogs: buildings and their recipes, loaded from JSON or YAML
//		• Demand resolution: target rates expanded into a requirement graph
//		• Layout: a force-directed 2D embedding of that graph
//		• Partitioning: k-means over the layout, or a genetic search over
//		  direct cluster assignments with colocate/split/size constraints
//		• A planner that runs all of it behind one Request, with logs and metrics
//
// Package layout:
//
//	catalog/   - buildings, recipes, Lookup, Validate, Load
//	core/      - thread-safe directed Graph with accumulating edges
//	dfs/       - traversal, cycle detection, topological order
//	demand/    - Resolve: targets to a requirement Graph
//	embed/     - Layout: force simulation over node indices
//	partition/ - Problem, Assignment, CrossFlow, Assemble, seeded rand
//	kmeans/    - Partition: best-of-n Lloyd runs over embedded points
//	genetic/   - Fitness and Evolve over cluster assignments
//	planner/   - Planner.Run and async Jobs
//	internal/  - cli, config, logging, metrics
//	cmd/       - the prodgraph binary
//
// Quick example:
//
//	ore ──2──▶ bar ──1──▶ plate
//
//	resolving plate=1 needs one bar/s and two ore/s; ore is raw.
//
//	go install github.com/katalvlaran/prodgraph/cmd/prodgraph@latest
//	prodgraph plan recipes.yaml -t plate=1 -k 2
package prodgraph
