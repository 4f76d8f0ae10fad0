package fastprng

import "math/bits"

// Xoroshiro128x2 runs two independent xoroshiro128+ lanes in lockstep. Each
// state word is stored as a lane pair so one straight-line update sequence
// advances both lanes; on amd64 the paired ops lower to 128-bit vector
// instructions.
//
// Scalar accessors return lane 0's value and discard lane 1's. Callers
// wanting both lanes use the *x2 accessors or the fill functions, which
// interleave the lanes: even buffer indices hold lane 0, odd hold lane 1.
type Xoroshiro128x2 struct {
	s0, s1 [2]uint64
}

// NewXoroshiro128x2 returns a generator with lane 0 seeded from (a0, a1)
// and lane 1 from (b0, b1). Neither lane's words may both be zero.
func NewXoroshiro128x2(a0, a1, b0, b1 uint64) *Xoroshiro128x2 {
	x := new(Xoroshiro128x2)
	x.Seed(a0, a1, b0, b1)
	return x
}

// Seed assigns both lanes and runs one warm-up step. Call it exactly once
// per instance.
func (x *Xoroshiro128x2) Seed(a0, a1, b0, b1 uint64) {
	x.s0 = [2]uint64{a0, b0}
	x.s1 = [2]uint64{a1, b1}
	x.Uint64x2()
}

// Uint64x2 advances both lanes and returns their words (lane 0 first).
func (x *Xoroshiro128x2) Uint64x2() (uint64, uint64) {
	s00, s01 := x.s0[0], x.s0[1]
	s10, s11 := x.s1[0], x.s1[1]
	r0 := s00 + s10
	r1 := s01 + s11
	s10 ^= s00
	s11 ^= s01
	x.s0[0] = bits.RotateLeft64(s00, 24) ^ s10 ^ s10<<16
	x.s0[1] = bits.RotateLeft64(s01, 24) ^ s11 ^ s11<<16
	x.s1[0] = bits.RotateLeft64(s10, 37)
	x.s1[1] = bits.RotateLeft64(s11, 37)
	return r0, r1
}

// Uint53x2 returns the top 53 bits of both lanes' next words.
func (x *Xoroshiro128x2) Uint53x2() (uint64, uint64) {
	a, b := x.Uint64x2()
	return Uint53(a), Uint53(b)
}

// Float64x2 returns both lanes' next values in [0, 1).
func (x *Xoroshiro128x2) Float64x2() (float64, float64) {
	a, b := x.Uint64x2()
	return UnitFloat(a), UnitFloat(b)
}

// Coordx2 returns both lanes' next values in [-1, 1).
func (x *Xoroshiro128x2) Coordx2() (float64, float64) {
	a, b := x.Uint64x2()
	return Coord(a), Coord(b)
}

// CoordSquaredx2 returns both lanes' next squared coordinates.
func (x *Xoroshiro128x2) CoordSquaredx2() (float64, float64) {
	a, b := x.Uint64x2()
	return CoordSquared(a), CoordSquared(b)
}

// Uint64 returns lane 0's next word.
func (x *Xoroshiro128x2) Uint64() uint64 {
	a, _ := x.Uint64x2()
	return a
}

// Uint53 returns the top 53 bits of lane 0's next word.
func (x *Xoroshiro128x2) Uint53() uint64 { return Uint53(x.Uint64()) }

// Uint32 returns the top 32 bits of lane 0's next word.
func (x *Xoroshiro128x2) Uint32() uint32 { return Uint32(x.Uint64()) }

// Float64 returns lane 0's next value in [0, 1).
func (x *Xoroshiro128x2) Float64() float64 { return UnitFloat(x.Uint64()) }

// Coord returns lane 0's next value in [-1, 1).
func (x *Xoroshiro128x2) Coord() float64 { return Coord(x.Uint64()) }

// CoordSquared returns lane 0's next squared coordinate.
func (x *Xoroshiro128x2) CoordSquared() float64 { return CoordSquared(x.Uint64()) }

// Jump advances both lanes by 2^64 steps using the per-lane jump
// polynomial in lockstep.
func (x *Xoroshiro128x2) Jump() {
	var a0, a1, b0, b1 uint64
	for _, poly := range &xoroshiro128JumpPoly {
		for b := 0; b < 64; b++ {
			if poly&(1<<uint(b)) != 0 {
				a0 ^= x.s0[0]
				a1 ^= x.s1[0]
				b0 ^= x.s0[1]
				b1 ^= x.s1[1]
			}
			x.Uint64x2()
		}
	}
	x.s0 = [2]uint64{a0, b0}
	x.s1 = [2]uint64{a1, b1}
}

// FillUint64 overwrites buf with fresh words, lanes interleaved. An
// odd-length buffer takes lane 0's value in the final slot and drops
// lane 1's.
func (x *Xoroshiro128x2) FillUint64(buf []uint64) {
	i := 0
	for ; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = x.Uint64x2()
	}
	if i < len(buf) {
		buf[i] = x.Uint64()
	}
}

// FillUint53 overwrites buf with fresh 53-bit values, lanes interleaved.
func (x *Xoroshiro128x2) FillUint53(buf []uint64) {
	i := 0
	for ; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = x.Uint53x2()
	}
	if i < len(buf) {
		buf[i] = x.Uint53()
	}
}

// FillFloat64 overwrites buf with fresh values in [0, 1), lanes
// interleaved.
func (x *Xoroshiro128x2) FillFloat64(buf []float64) {
	i := 0
	for ; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = x.Float64x2()
	}
	if i < len(buf) {
		buf[i] = x.Float64()
	}
}

// FillCoord overwrites buf with fresh values in [-1, 1), lanes interleaved.
func (x *Xoroshiro128x2) FillCoord(buf []float64) {
	i := 0
	for ; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = x.Coordx2()
	}
	if i < len(buf) {
		buf[i] = x.Coord()
	}
}

// FillCoordSquared overwrites buf with fresh squared coordinates, lanes
// interleaved.
func (x *Xoroshiro128x2) FillCoordSquared(buf []float64) {
	i := 0
	for ; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = x.CoordSquaredx2()
	}
	if i < len(buf) {
		buf[i] = x.CoordSquared()
	}
}

// UnitCirclePoints generates n points in the unit square and returns how
// many land inside the unit circle. Points come in lane pairs: each dual
// step yields both points' x values, the next both y values. A trailing odd
// point uses lane 0 only.
func (x *Xoroshiro128x2) UnitCirclePoints(n int) int {
	inside := 0
	for ; n >= 2; n -= 2 {
		x0, x1 := x.CoordSquaredx2()
		y0, y1 := x.CoordSquaredx2()
		if x0+y0 <= 1 {
			inside++
		}
		if x1+y1 <= 1 {
			inside++
		}
	}
	if n > 0 {
		if CoordSquared(x.Uint64())+CoordSquared(x.Uint64()) <= 1 {
			inside++
		}
	}
	return inside
}
