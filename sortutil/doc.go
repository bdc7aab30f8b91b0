// Package sortutil provides CountingSort, a stable, O(n+maxKey) sort of
// records keyed by a small non-negative integer.
//
// The minimiser in dmin relies on this sort's determinism: ties in child
// subtree size must break in a fixed, input-order-dependent way on every
// platform, or the same tree could yield different arrangements on
// different runs. A generic comparison sort does not give that guarantee
// as cheaply — sort.Slice is explicitly documented as not stable, and
// sort.Stable still costs O(n log n) against a key space bounded by n —
// so the deterministic-ordering discipline used throughout this module
// is formalised here as a reusable primitive.
package sortutil
