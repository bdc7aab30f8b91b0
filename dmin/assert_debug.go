//go:build lal_debug

package dmin

// debugAssert panics on a violated solver invariant. Compiled in only
// under the lal_debug build tag; release builds carry the no-op twin.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("dmin: " + msg)
	}
}
