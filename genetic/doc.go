// Package genetic searches cluster assignments with a generational genetic
// algorithm.
//
// An individual is a partition.Assignment; lower fitness is better:
//
//	F = Σ crossing links · value · w.Transport
//	  + Σ split co-location pairs       · w.Constraints
//	  + Σ shared split pairs            · w.Split
//	  + Σ non-empty clusters  |size outside [MinSize, MaxSize]| · w.Balance
//	  + Σ empty clusters      EmptyClusterPenalty
//
// Each generation sorts by fitness, copies the elite unchanged, and fills the
// rest with children of two tournament winners (uniform crossover, then
// per-gene mutation). Elites survive, so the best fitness per generation
// never increases.
//
// Independent attempts start from fresh random populations; the lowest
// fitness seen across all of them is returned.
package genetic
