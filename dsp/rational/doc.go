// Package rational measures how well a real value is approximated by
// rationals with bounded denominator.
//
// [Distance] is the brute-force minimum used by arc classification. Its
// cost is linear in the denominator bound, so callers must keep that bound
// configured and finite. [Convergents] gives the continued-fraction view of
// the same question, which is how the best approximations are found in
// number theory.
package rational
