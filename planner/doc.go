// Package planner runs the whole pipeline for one request:
//
//	validate → demand.Resolve → (embed.Layout + kmeans.Partition | genetic.Evolve) → partition.Assemble
//
// Run is synchronous. Start schedules Run on a goroutine and returns a Job
// that completes exactly once, with either a result or an error; a panic in
// the computation is recovered and delivered as ErrFatal. Once an optimizer
// starts it runs to completion; the context is only checked between phases.
//
// Every run gets a uuid that tags its log entries and identifies its Job.
package planner
