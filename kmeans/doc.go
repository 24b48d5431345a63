// Package kmeans clusters embedded flow-graph nodes with multi-restart
// Lloyd iterations and keeps the restart with the lowest transport score.
//
// Per attempt:
//
//  1. Shuffle node indices; the first k give the initial centroids.
//  2. Up to MaxRounds times: assign every node to the nearest centroid
//     (squared Euclidean distance, ties to the lowest centroid index), stop
//     if nothing moved, otherwise move each centroid to the mean of its
//     members. A centroid with no members stays where it was.
//  3. Score = CrossFlow + SplitPenalty · (split pairs sharing a cluster).
//
// Co-location pairs are not scored here; they act only through the
// embedding, where they are short springs.
package kmeans
