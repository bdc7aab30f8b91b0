//go:build !lal_debug

package dmin

func debugAssert(bool, string) {}
