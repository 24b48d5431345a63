// Package embed places flow-graph nodes in the plane by force relaxation so
// that k-means has spatial locality to exploit. The coordinates are seed data
// for clustering, never a display layout.
//
// Model (one tick, alpha decaying from 1 to AlphaMin over Iterations ticks):
//
//  1. Link springs: each link pulls its endpoints toward rest length
//     Distance with strength 1/min(deg(s), deg(t)); the correction is split
//     by degree so the better-connected endpoint moves less.
//  2. Charge: every pair of nodes repels with force Charge·alpha/r
//     (exact O(n²) sum).
//  3. Centering: positions are shifted so their mean sits on (CenterX, CenterY).
//  4. Integration: v ← v·VelocityDecay; p ← p + v.
//
// Co-location constraints become links with rest length ConstraintDistance,
// i.e. near-rigid springs.
//
// Nodes start on a phyllotaxis spiral, so the only randomness is the
// sub-micron jiggle that separates coincident nodes; it is drawn from
// Options.Rand.
package embed
