package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/prodgraph/catalog"
	"github.com/katalvlaran/prodgraph/demand"
	"github.com/katalvlaran/prodgraph/embed"
	"github.com/katalvlaran/prodgraph/genetic"
	"github.com/katalvlaran/prodgraph/internal/logging"
	"github.com/katalvlaran/prodgraph/kmeans"
	"github.com/katalvlaran/prodgraph/partition"
)

// RandFactory returns the random source for a run with the given seed.
type RandFactory func(seed int64) partition.Rand

// DefaultRandFactory uses a fixed-seed source for non-zero seeds and a
// time-seeded one otherwise.
func DefaultRandFactory(seed int64) partition.Rand {
	if seed == 0 {
		return partition.SystemRand()
	}

	return partition.NewRand(seed)
}

// Stream numbers passed to partition.DeriveRand, one per optimisation phase.
const (
	streamEmbed uint64 = iota
	streamKMeans
	streamGenetic
)

// Option customises a Planner.
type Option func(*Planner)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics sets the run recorder; nil keeps the no-op recorder.
func WithMetrics(r Recorder) Option {
	return func(p *Planner) {
		if r != nil {
			p.rec = r
		}
	}
}

// WithRandFactory overrides how runs obtain their random source.
func WithRandFactory(f RandFactory) Option {
	return func(p *Planner) {
		if f != nil {
			p.randFor = f
		}
	}
}

// WithEmbedOptions overrides the relaxation schedule used before k-means.
// The Rand field is ignored; each run supplies its own.
func WithEmbedOptions(o embed.Options) Option {
	return func(p *Planner) { p.embed = o }
}

// WithResolveOptions forwards options to demand.Resolve.
func WithResolveOptions(opts ...demand.Option) Option {
	return func(p *Planner) { p.resolve = append(p.resolve, opts...) }
}

// Planner turns requests into results against one catalog. It holds no
// per-run state and is safe for concurrent use.
type Planner struct {
	cat     *catalog.Catalog
	log     logging.Logger
	rec     Recorder
	randFor RandFactory
	embed   embed.Options
	resolve []demand.Option
}

// New returns a Planner for cat.
func New(cat *catalog.Catalog, opts ...Option) *Planner {
	p := &Planner{
		cat:     cat,
		log:     logging.NewNopLogger(),
		rec:     nopRecorder{},
		randFor: DefaultRandFactory,
		embed:   embed.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("planner")

	return p
}

// Run executes req synchronously.
//
// Errors:
//   - ErrInvalidRequest for validation failures.
//   - demand errors (ErrCycle, ErrBadRecipe, ...) from resolution.
//   - ErrFatal wrapping genetic.ErrNoCandidate.
//   - ctx.Err() if ctx ends between phases.
func (p *Planner) Run(ctx context.Context, req Request) (*partition.Result, error) {
	return p.execute(ctx, uuid.NewString(), req)
}

// execute runs one request under runID and reports it. A panic in the
// computation becomes an ErrFatal error.
func (p *Planner) execute(ctx context.Context, runID string, req Request) (res *partition.Result, err error) {
	log := p.log.With(logging.String("run_id", runID), logging.String("method", string(req.Method)))
	start := time.Now()
	report := RunReport{RunID: runID, Method: req.Method, Status: StatusOK}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: panic: %v", ErrFatal, r)
		}
		report.Duration = time.Since(start)
		if res != nil {
			report.Nodes = len(res.Nodes)
			report.CrossFlow = res.Stats.TotalCrossFlow
		}
		switch {
		case err == nil:
			log.Info("run finished",
				logging.Int("nodes", report.Nodes),
				logging.Int("clusters", res.Stats.Clusters),
				logging.Float64("cross_flow", report.CrossFlow),
				logging.Duration("took", report.Duration))
		case errors.Is(err, ErrInvalidRequest):
			report.Status = StatusInvalid
			log.Warn("run rejected", logging.Err(err))
		case errors.Is(err, ErrFatal):
			report.Status = StatusFatal
			log.Error("run failed fatally", logging.Err(err))
		default:
			report.Status = StatusError
			log.Error("run failed", logging.Err(err))
		}
		p.rec.ObserveRun(report)
	}()

	return p.run(ctx, req, log)
}

func (p *Planner) run(ctx context.Context, req Request, log logging.Logger) (*partition.Result, error) {
	// 1) Validate
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2) Resolve demand
	g, err := demand.Resolve(p.cat, req.Targets, p.resolve...)
	if err != nil {
		return nil, err
	}
	log.Debug("demand resolved",
		logging.Int("nodes", g.Len()),
		logging.Int("edges", g.EdgeCount()),
		logging.Float64("total_flow", g.TotalFlow()))
	if g.Len() == 0 || req.Method == MethodNone {
		return partition.Assemble(g, nil)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// 3) Optimize
	rng := p.randFor(req.Seed)
	var (
		assign partition.Assignment
		score  float64
	)
	switch req.Method {
	case MethodKMeans:
		assign, score, err = p.runKMeans(g, req.KMeans, rng, log)
	case MethodGenetic:
		assign, score, err = p.runGenetic(g, req.Genetic, rng, log)
	}
	if err != nil {
		return nil, err
	}

	// 4) Assemble
	res, err := partition.Assemble(g, assign)
	if err != nil {
		return nil, err
	}
	res.Stats.Method = string(req.Method)
	res.Stats.Score = score

	// 5) Lower bound from split pairs
	split := req.KMeans.Split
	if req.Method == MethodGenetic {
		split = req.Genetic.Split
	}
	if res.Stats.CrossFlowBound, err = partition.CrossFlowBound(context.WithoutCancel(ctx), g, split); err != nil {
		return nil, err
	}
	if res.Stats.CrossFlowBound > 0 {
		log.Debug("split cut bound",
			logging.Float64("bound", res.Stats.CrossFlowBound),
			logging.Float64("cross_flow", res.Stats.TotalCrossFlow))
	}

	return res, nil
}

func (p *Planner) runKMeans(g *demand.Graph, params KMeansParams, rng partition.Rand, log logging.Logger) (partition.Assignment, float64, error) {
	prob := partition.NewProblem(g, params.Colocate, params.Split)
	warnDropped(log, prob)

	links := make([]embed.Link, len(prob.Links))
	for i, l := range prob.Links {
		links[i] = embed.Link{Source: l.Source, Target: l.Target}
	}
	eo := p.embed
	eo.Rand = partition.DeriveRand(rng, streamEmbed)
	points, err := embed.Layout(prob.Len(), links, prob.Colocate, eo)
	if err != nil {
		return nil, 0, fmt.Errorf("planner: embed: %w", err)
	}

	ko := kmeans.DefaultOptions()
	ko.K = params.K
	ko.Attempts = params.Attempts
	ko.Rand = partition.DeriveRand(rng, streamKMeans)

	return kmeans.Partition(points, prob.Links, prob.Split, ko)
}

func (p *Planner) runGenetic(g *demand.Graph, params GeneticParams, rng partition.Rand, log logging.Logger) (partition.Assignment, float64, error) {
	prob := partition.NewProblem(g, params.Colocate, params.Split)
	warnDropped(log, prob)

	o := genetic.DefaultOptions()
	o.PopulationSize = params.PopulationSize
	o.Generations = params.Generations
	o.MutationRate = params.MutationRate
	o.K = params.K
	o.Weights = params.Weights
	o.MinSize = params.MinSize
	o.MaxSize = params.MaxSize
	o.Attempts = params.Attempts
	o.Rand = partition.DeriveRand(rng, streamGenetic)

	out, err := genetic.Evolve(prob, o)
	if errors.Is(err, genetic.ErrNoCandidate) {
		return nil, 0, fmt.Errorf("%w: %w", ErrFatal, err)
	}
	if err != nil {
		return nil, 0, err
	}
	log.Debug("evolution finished",
		logging.Int("attempt", out.Attempt),
		logging.Float64("fitness", out.Fitness))

	return out.Best, out.Fitness, nil
}

func warnDropped(log logging.Logger, prob *partition.Problem) {
	for _, pr := range prob.Dropped {
		log.Warn("constraint pair dropped: unknown or repeated item", logging.String("a", pr.A), logging.String("b", pr.B))
	}
}
