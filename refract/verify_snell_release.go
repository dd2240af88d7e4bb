//go:build !verify_snell
// +build !verify_snell

package refract

// Empty stub that will be optimized out
func verifySnell(pf *PathFinder, x float64) {
	// Empty function will be entirely optimized out in release builds
}
