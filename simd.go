package fastprng

import "golang.org/x/sys/cpu"

// hasSIMD is probed once at startup. The dual-lane engines are portable Go
// and run anywhere; the probe reports whether the cpu has the wide integer
// vector units that make them pay off.
var hasSIMD = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// HasSIMD reports whether the dual-lane engines get hardware vector
// support on this cpu.
func HasSIMD() bool { return hasSIMD }

// DefaultAlgorithm returns the largest-state family, dual-lane when the
// cpu can vectorize it.
func DefaultAlgorithm() Algorithm {
	if hasSIMD {
		return Xoshiro256PlusSIMD
	}
	return Xoshiro256Plus
}
