// Package pipeline runs the sieve, arc and zeta components over a batch.
//
// [Pipeline.Process] is strictly ordered: sieve-filter the raw values, detect
// twins and estimate the sieve dimension, classify every surviving value
// into major and minor arcs, evaluate the special function at 1 + mean(raw)
// with the local structure richness at the same point, then report the gaps
// between consecutive surviving values whose midpoint is minor-arc.
//
// Data flows one way; every stage only reads the output of earlier ones.
package pipeline
