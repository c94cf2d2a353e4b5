// Package fastmath provides the exp and log kernels used by series
// evaluation.
//
// By default the kernels are the standard library ones. Building with the
// fastmath tag swaps in the algo-approx approximations, trading a small
// amount of accuracy for speed in long direct summations. Both variants are
// deterministic, so repeated evaluations of the same input stay
// bit-identical either way.
package fastmath
