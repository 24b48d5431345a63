package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodgraph/catalog"
	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/internal/logging"
	"github.com/katalvlaran/prodgraph/internal/metrics"
	"github.com/katalvlaran/prodgraph/partition"
	"github.com/katalvlaran/prodgraph/planner"
)

// ValidateReport is the output of the validate command.
type ValidateReport struct {
	Buildings int              `json:"buildings" yaml:"buildings"`
	Items     int              `json:"items" yaml:"items"`
	Shadowed  []catalog.Shadow `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog]",
		Short: "Check a catalog for malformed rates and production cycles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromCommand(cmd)
			cat, err := loadCatalog(app, args)
			if err != nil {
				return err
			}
			if err = cat.Validate(); err != nil {
				return err
			}
			report := ValidateReport{
				Buildings: len(cat.Buildings),
				Items:     len(cat.Items()),
				Shadowed:  cat.Shadowed(),
			}
			for _, s := range report.Shadowed {
				app.Logger.Warn("recipe shadowed by an earlier building",
					logging.String("item", s.Item),
					logging.String("winner", s.Winner),
					logging.String("shadowed", s.Shadowed))
			}

			return printResult(cmd.OutOrStdout(), app.Output, report)
		},
	}
}

// ResolveReport is the output of the resolve command.
type ResolveReport struct {
	Nodes     []demand.Node         `json:"nodes" yaml:"nodes"`
	Edges     []demand.Edge         `json:"edges" yaml:"edges"`
	Order     []string              `json:"order" yaml:"order"`
	Buildings []demand.BuildingLoad `json:"buildings" yaml:"buildings"`
	Trace     *Trace                `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// Trace lists what one item needs and what depends on it.
type Trace struct {
	Item       string   `json:"item" yaml:"item"`
	Upstream   []string `json:"upstream" yaml:"upstream"`
	Downstream []string `json:"downstream" yaml:"downstream"`
}

func trace(g *demand.Graph, item string) (*Trace, error) {
	up, err := g.Upstream(item)
	if err != nil {
		return nil, err
	}
	down, err := g.Downstream(item)
	if err != nil {
		return nil, err
	}

	return &Trace{Item: item, Upstream: up, Downstream: down}, nil
}

func newResolveCommand() *cobra.Command {
	var (
		targets  []string
		maxDepth int
		traceOf  string
	)
	cmd := &cobra.Command{
		Use:   "resolve [catalog] -t item=rate ...",
		Short: "Resolve targets into the flow graph of required items and rates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromCommand(cmd)
			cat, err := loadCatalog(app, args)
			if err != nil {
				return err
			}
			ts, err := parseTargets(targets)
			if err != nil {
				return err
			}
			req := planner.Request{Targets: ts}
			if err = req.Validate(); err != nil {
				return err
			}
			g, err := demand.Resolve(cat, ts, demand.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			order, err := g.Order()
			if err != nil {
				return err
			}
			app.Logger.Debug("resolved",
				logging.Int("nodes", g.Len()),
				logging.Int("edges", g.EdgeCount()),
				logging.Float64("total_required", g.TotalRequired()),
				logging.Float64("total_flow", g.TotalFlow()))

			report := ResolveReport{
				Nodes:     g.Nodes(),
				Edges:     g.Edges(),
				Order:     order,
				Buildings: g.Buildings(),
			}
			if traceOf != "" {
				if report.Trace, err = trace(g, traceOf); err != nil {
					return err
				}
			}

			return printResult(cmd.OutOrStdout(), app.Output, report)
		},
	}
	cmd.Flags().StringArrayVarP(&targets, "target", "t", nil, "production target item=rate (repeatable)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "fail if resolution goes deeper than this; 0 is unlimited")
	cmd.Flags().StringVar(&traceOf, "trace", "", "also list the items upstream and downstream of this item")

	return cmd
}

type planFlags struct {
	targets     []string
	method      string
	k           int
	attempts    int
	split       []string
	colocate    []string
	population  int
	generations int
	mutation    float64
	metricsOut  string
}

func newPlanCommand() *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan [catalog] -t item=rate ... --method kmeans|genetic",
		Short: "Resolve targets and partition the flow graph into clusters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromCommand(cmd)
			cat, err := loadCatalog(app, args)
			if err != nil {
				return err
			}
			req, err := buildRequest(cmd, app, f)
			if err != nil {
				return err
			}

			opts := []planner.Option{
				planner.WithLogger(app.Logger),
				planner.WithEmbedOptions(app.Config.EmbedOptions()),
			}
			if f.metricsOut != "" {
				app.Config.Metrics.Enabled = true
				app.Config.Metrics.Output = f.metricsOut
			}
			var m *metrics.Metrics
			if app.Config.Metrics.Enabled {
				if m, err = metrics.New(app.Config.Metrics.Namespace); err != nil {
					return err
				}
				opts = append(opts, planner.WithMetrics(m))
			}

			job := planner.New(cat, opts...).Start(cmd.Context(), req)
			app.Logger.Debug("plan started", logging.String("run_id", job.ID()))
			res, err := job.Wait(cmd.Context())
			if m != nil && app.Config.Metrics.Output != "" {
				if derr := dumpMetrics(cmd, m, app.Config.Metrics.Output); derr != nil {
					app.Logger.Warn("metrics dump failed", logging.Err(derr))
				}
			}
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), app.Output, res)
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVarP(&f.targets, "target", "t", nil, "production target item=rate (repeatable)")
	fl.StringVarP(&f.method, "method", "m", string(planner.MethodKMeans), "optimizer: kmeans or genetic")
	fl.IntVarP(&f.k, "clusters", "k", 0, "cluster count; overrides config")
	fl.IntVar(&f.attempts, "attempts", 0, "independent restarts; overrides config")
	fl.StringArrayVar(&f.split, "split", nil, "keep two items apart, itemA:itemB (repeatable)")
	fl.StringArrayVar(&f.colocate, "colocate", nil, "keep two items together, itemA:itemB (repeatable)")
	fl.IntVar(&f.population, "population", 0, "genetic population size; overrides config")
	fl.IntVar(&f.generations, "generations", 0, "genetic generation count; overrides config")
	fl.Float64Var(&f.mutation, "mutation", 0, "genetic per-gene mutation rate; overrides config")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write run metrics in text exposition format to this file; - for stderr")

	return cmd
}

// buildRequest starts from the config sections and applies changed flags.
func buildRequest(cmd *cobra.Command, app *appContext, f *planFlags) (planner.Request, error) {
	ts, err := parseTargets(f.targets)
	if err != nil {
		return planner.Request{}, err
	}
	split, err := parsePairs(f.split)
	if err != nil {
		return planner.Request{}, err
	}
	colocate, err := parsePairs(f.colocate)
	if err != nil {
		return planner.Request{}, err
	}

	req := planner.Request{
		Targets: ts,
		Method:  planner.Method(f.method),
		KMeans:  app.Config.KMeansParams(),
		Genetic: app.Config.GeneticParams(),
		Seed:    app.Config.Seed,
	}
	changed := cmd.Flags().Changed
	if changed("clusters") {
		req.KMeans.K, req.Genetic.K = f.k, f.k
	}
	if changed("attempts") {
		req.KMeans.Attempts, req.Genetic.Attempts = f.attempts, f.attempts
	}
	if changed("population") {
		req.Genetic.PopulationSize = f.population
	}
	if changed("generations") {
		req.Genetic.Generations = f.generations
	}
	if changed("mutation") {
		req.Genetic.MutationRate = f.mutation
	}
	req.KMeans.Split = appendPairs(req.KMeans.Split, split)
	req.KMeans.Colocate = appendPairs(req.KMeans.Colocate, colocate)
	req.Genetic.Split = appendPairs(req.Genetic.Split, split)
	req.Genetic.Colocate = appendPairs(req.Genetic.Colocate, colocate)

	return req, nil
}

func appendPairs(base, extra []partition.Pair) []partition.Pair {
	if len(extra) == 0 {
		return base
	}

	return append(base, extra...)
}

func dumpMetrics(cmd *cobra.Command, m *metrics.Metrics, path string) error {
	w, closeFn, err := openOutput(cmd, path)
	if err != nil {
		return fmt.Errorf("cli: metrics output: %w", err)
	}
	if err = m.WriteText(w); err != nil {
		_ = closeFn()
		return err
	}

	return closeFn()
}
