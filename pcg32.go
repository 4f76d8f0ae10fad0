package fastprng

import "math/bits"

// constants from the reference implementation at pcg-random.org.
const (
	pcg32Mult       = 6364136223846793005
	pcg32DefaultInc = 0xda3e39cb94b95bdb
)

// PCG32 is the pcg-xsh-rr generator: 64 bits of state permuted down to 32
// output bits per step. It has no jump function; parallel streams are
// selected by giving each instance a distinct odd increment.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a PCG32 on the default stream seeded with seed.
func NewPCG32(seed uint64) *PCG32 {
	p := &PCG32{inc: pcg32DefaultInc}
	p.Seed(seed)
	return p
}

// NewPCG32Stream returns a PCG32 seeded with seed on the stream selected by
// stream. Distinct stream values give independent sequences from the same
// seed.
func NewPCG32Stream(seed, stream uint64) *PCG32 {
	p := &PCG32{inc: pcg32DefaultInc}
	p.SetStreamIncrement(stream)
	p.Seed(seed)
	return p
}

// Seed assigns the state and runs one warm-up step so the first value
// handed out is already well mixed. Call it exactly once per instance.
func (p *PCG32) Seed(seed uint64) {
	p.state = seed
	p.Uint32()
}

// SetStreamIncrement selects an additive stream. The value is forced odd
// via inc<<1|1 and one warm-up step runs. It must be called before Seed to
// reproduce the reference stream for that increment; calling it after
// seeding still yields a valid stream, just a different one.
func (p *PCG32) SetStreamIncrement(inc uint64) {
	p.inc = inc<<1 | 1
	p.Uint32()
}

// Uint32 advances the lcg and permutes the previous state into the output
// word: xorshift the high bits down, then rotate right by the top five
// state bits.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.state = old*pcg32Mult + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// Uint64 concatenates two outputs, high word first.
func (p *PCG32) Uint64() uint64 {
	hi := uint64(p.Uint32())
	return hi<<32 | uint64(p.Uint32())
}

// Uint53 returns the top 53 bits of the next word.
func (p *PCG32) Uint53() uint64 { return Uint53(p.Uint64()) }

// Float64 returns the next value in [0, 1).
func (p *PCG32) Float64() float64 { return UnitFloat(p.Uint64()) }

// Coord returns the next value in [-1, 1).
func (p *PCG32) Coord() float64 { return Coord(p.Uint64()) }

// CoordSquared returns the next squared coordinate, in [0, 1].
func (p *PCG32) CoordSquared() float64 { return CoordSquared(p.Uint64()) }

// FillUint64 overwrites buf with fresh words.
func (p *PCG32) FillUint64(buf []uint64) {
	for i := range buf {
		buf[i] = p.Uint64()
	}
}

// FillUint53 overwrites buf with fresh 53-bit values.
func (p *PCG32) FillUint53(buf []uint64) {
	for i := range buf {
		buf[i] = p.Uint53()
	}
}

// FillFloat64 overwrites buf with fresh values in [0, 1).
func (p *PCG32) FillFloat64(buf []float64) {
	for i := range buf {
		buf[i] = p.Float64()
	}
}

// FillCoord overwrites buf with fresh values in [-1, 1).
func (p *PCG32) FillCoord(buf []float64) {
	for i := range buf {
		buf[i] = p.Coord()
	}
}

// FillCoordSquared overwrites buf with fresh squared coordinates.
func (p *PCG32) FillCoordSquared(buf []float64) {
	for i := range buf {
		buf[i] = p.CoordSquared()
	}
}

// UnitCirclePoints generates n points in the unit square and returns how
// many land inside the unit circle, without a call per value. The per-point
// derivation is exactly two CoordSquared values.
func (p *PCG32) UnitCirclePoints(n int) int {
	inside := 0
	for i := 0; i < n; i++ {
		x := CoordSquared(p.Uint64())
		y := CoordSquared(p.Uint64())
		if x+y <= 1 {
			inside++
		}
	}
	return inside
}
