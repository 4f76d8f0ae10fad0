package fastprng

import "math/bits"

// Xoroshiro128 is xoroshiro128+ with the 2018 constants (24, 16, 37): 128
// bits of state, 64 bits out per step, and a 2^64 jump for carving
// substreams.
type Xoroshiro128 struct {
	s0, s1 uint64
}

// NewXoroshiro128 returns a seeded generator. The seed words must not both
// be zero; expand a single word with SplitMix when in doubt.
func NewXoroshiro128(seed0, seed1 uint64) *Xoroshiro128 {
	x := new(Xoroshiro128)
	x.Seed(seed0, seed1)
	return x
}

// Seed assigns the state words and runs one warm-up step so the first value
// handed out is already mixed. Call it exactly once per instance.
func (x *Xoroshiro128) Seed(seed0, seed1 uint64) {
	x.s0, x.s1 = seed0, seed1
	x.Uint64()
}

// Uint64 returns the sum of the state words and applies the
// xor-shift-rotate update.
func (x *Xoroshiro128) Uint64() uint64 {
	s0, s1 := x.s0, x.s1
	r := s0 + s1
	s1 ^= s0
	x.s0 = bits.RotateLeft64(s0, 24) ^ s1 ^ s1<<16
	x.s1 = bits.RotateLeft64(s1, 37)
	return r
}

// Uint53 returns the top 53 bits of the next word.
func (x *Xoroshiro128) Uint53() uint64 { return Uint53(x.Uint64()) }

// Uint32 returns the top 32 bits of the next word.
func (x *Xoroshiro128) Uint32() uint32 { return Uint32(x.Uint64()) }

// Float64 returns the next value in [0, 1).
func (x *Xoroshiro128) Float64() float64 { return UnitFloat(x.Uint64()) }

// Coord returns the next value in [-1, 1).
func (x *Xoroshiro128) Coord() float64 { return Coord(x.Uint64()) }

// CoordSquared returns the next squared coordinate, in [0, 1].
func (x *Xoroshiro128) CoordSquared() float64 { return CoordSquared(x.Uint64()) }

// jump polynomial for 2^64 steps, one word per state word.
var xoroshiro128JumpPoly = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}

// Jump advances the state by 2^64 steps. Calling it k times after seeding
// selects substream k; each substream has 2^64 values of headroom. The
// single-step advance runs on every polynomial bit whether or not it is
// set, so a jump always costs 128 steps.
func (x *Xoroshiro128) Jump() {
	var s0, s1 uint64
	for _, poly := range &xoroshiro128JumpPoly {
		for b := 0; b < 64; b++ {
			if poly&(1<<uint(b)) != 0 {
				s0 ^= x.s0
				s1 ^= x.s1
			}
			x.Uint64()
		}
	}
	x.s0, x.s1 = s0, s1
}

// FillUint64 overwrites buf with fresh words.
func (x *Xoroshiro128) FillUint64(buf []uint64) {
	for i := range buf {
		buf[i] = x.Uint64()
	}
}

// FillUint53 overwrites buf with fresh 53-bit values.
func (x *Xoroshiro128) FillUint53(buf []uint64) {
	for i := range buf {
		buf[i] = x.Uint53()
	}
}

// FillFloat64 overwrites buf with fresh values in [0, 1).
func (x *Xoroshiro128) FillFloat64(buf []float64) {
	for i := range buf {
		buf[i] = x.Float64()
	}
}

// FillCoord overwrites buf with fresh values in [-1, 1).
func (x *Xoroshiro128) FillCoord(buf []float64) {
	for i := range buf {
		buf[i] = x.Coord()
	}
}

// FillCoordSquared overwrites buf with fresh squared coordinates.
func (x *Xoroshiro128) FillCoordSquared(buf []float64) {
	for i := range buf {
		buf[i] = x.CoordSquared()
	}
}

// UnitCirclePoints generates n points in the unit square and returns how
// many land inside the unit circle, without a call per value.
func (x *Xoroshiro128) UnitCirclePoints(n int) int {
	inside := 0
	for i := 0; i < n; i++ {
		px := CoordSquared(x.Uint64())
		py := CoordSquared(x.Uint64())
		if px+py <= 1 {
			inside++
		}
	}
	return inside
}
