package fastprng

import "math/bits"

// Xoshiro256 is xoshiro256+: 256 bits of state, 64 bits out per step, and a
// 2^128 jump for carving substreams.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 returns a seeded generator. The seed words must not all be
// zero; expand a single word with SplitMix when in doubt.
func NewXoshiro256(seed0, seed1, seed2, seed3 uint64) *Xoshiro256 {
	x := new(Xoshiro256)
	x.Seed(seed0, seed1, seed2, seed3)
	return x
}

// Seed assigns the state words and runs one warm-up step so the first value
// handed out is already mixed. Call it exactly once per instance.
func (x *Xoshiro256) Seed(seed0, seed1, seed2, seed3 uint64) {
	x.s = [4]uint64{seed0, seed1, seed2, seed3}
	x.Uint64()
}

// Uint64 returns the sum of the first and last state words and applies the
// xor-shift-rotate update.
func (x *Xoshiro256) Uint64() uint64 {
	r := x.s[0] + x.s[3]
	t := x.s[1] << 17
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)
	return r
}

// Uint53 returns the top 53 bits of the next word.
func (x *Xoshiro256) Uint53() uint64 { return Uint53(x.Uint64()) }

// Uint32 returns the top 32 bits of the next word.
func (x *Xoshiro256) Uint32() uint32 { return Uint32(x.Uint64()) }

// Float64 returns the next value in [0, 1).
func (x *Xoshiro256) Float64() float64 { return UnitFloat(x.Uint64()) }

// Coord returns the next value in [-1, 1).
func (x *Xoshiro256) Coord() float64 { return Coord(x.Uint64()) }

// CoordSquared returns the next squared coordinate, in [0, 1].
func (x *Xoshiro256) CoordSquared() float64 { return CoordSquared(x.Uint64()) }

// jump polynomial for 2^128 steps, one word per state word.
var xoshiro256JumpPoly = [4]uint64{
	0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
	0xa9582618e03fc9aa, 0x39abdc4529b1661c,
}

// Jump advances the state by 2^128 steps. Calling it k times after seeding
// selects substream k; each substream has 2^128 values of headroom. The
// single-step advance runs on every polynomial bit whether or not it is
// set, so a jump always costs 256 steps.
func (x *Xoshiro256) Jump() {
	var acc [4]uint64
	for _, poly := range &xoshiro256JumpPoly {
		for b := 0; b < 64; b++ {
			if poly&(1<<uint(b)) != 0 {
				acc[0] ^= x.s[0]
				acc[1] ^= x.s[1]
				acc[2] ^= x.s[2]
				acc[3] ^= x.s[3]
			}
			x.Uint64()
		}
	}
	x.s = acc
}

// FillUint64 overwrites buf with fresh words.
func (x *Xoshiro256) FillUint64(buf []uint64) {
	for i := range buf {
		buf[i] = x.Uint64()
	}
}

// FillUint53 overwrites buf with fresh 53-bit values.
func (x *Xoshiro256) FillUint53(buf []uint64) {
	for i := range buf {
		buf[i] = x.Uint53()
	}
}

// FillFloat64 overwrites buf with fresh values in [0, 1).
func (x *Xoshiro256) FillFloat64(buf []float64) {
	for i := range buf {
		buf[i] = x.Float64()
	}
}

// FillCoord overwrites buf with fresh values in [-1, 1).
func (x *Xoshiro256) FillCoord(buf []float64) {
	for i := range buf {
		buf[i] = x.Coord()
	}
}

// FillCoordSquared overwrites buf with fresh squared coordinates.
func (x *Xoshiro256) FillCoordSquared(buf []float64) {
	for i := range buf {
		buf[i] = x.CoordSquared()
	}
}

// UnitCirclePoints generates n points in the unit square and returns how
// many land inside the unit circle, without a call per value.
func (x *Xoshiro256) UnitCirclePoints(n int) int {
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
