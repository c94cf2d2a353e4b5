// Package arc splits real values into major-arc and minor-arc classes in the
// manner of the Hardy-Littlewood circle method.
//
// A value within the major-arc threshold of a rational with small
// denominator is treated as smooth and weighted by the rational decay
// 1/(1+x²). Every other value is weighted by the magnitude of the truncated
// exponential sum
//
//	E(x) = Σ_{n=1}^{N} e^{2πixn} / n
//
// The truncation length N trades accuracy for cost and is configurable.
package arc
