package fastprng

import "github.com/zeebo/errs"

// Error wraps every error returned from the package boundary. The engine
// cores themselves never fail: all arithmetic wraps on purpose and every
// conversion is total.
var Error = errs.Class("fastprng")

// Algorithm selects a generator family.
type Algorithm int

const (
	// PCG is pcg-xsh-rr: 64 bits of state, 32-bit outputs, streams
	// selected by increment.
	PCG Algorithm = iota

	// Xoroshiro128Plus is xoroshiro128+ with a 2^64 jump.
	Xoroshiro128Plus

	// Xoroshiro128PlusSIMD is the dual-lane xoroshiro128+ variant.
	Xoroshiro128PlusSIMD

	// Xoshiro256Plus is xoshiro256+ with a 2^128 jump.
	Xoshiro256Plus

	// Xoshiro256PlusSIMD is the dual-lane xoshiro256+ variant.
	Xoshiro256PlusSIMD
)

// SeedCount returns how many 64-bit seed words the algorithm consumes.
// Dual-lane variants take one full seed set per lane.
func (a Algorithm) SeedCount() int {
	switch a {
	case PCG:
		return 1
	case Xoroshiro128Plus:
		return 2
	case Xoroshiro128PlusSIMD:
		return 4
	case Xoshiro256Plus:
		return 4
	case Xoshiro256PlusSIMD:
		return 8
	default:
		return 0
	}
}

func (a Algorithm) String() string {
	switch a {
	case PCG:
		return "pcg"
	case Xoroshiro128Plus:
		return "xoroshiro128+"
	case Xoroshiro128PlusSIMD:
		return "xoroshiro128+x2"
	case Xoshiro256Plus:
		return "xoshiro256+"
	case Xoshiro256PlusSIMD:
		return "xoshiro256+x2"
	default:
		return "unknown"
	}
}

// Source is the accessor surface every engine exposes. The engines are
// concrete structs and hot loops should hold the concrete type; the
// interface exists for hosts that pick the family at runtime.
type Source interface {
	Uint64() uint64
	Uint53() uint64
	Uint32() uint32
	Float64() float64
	Coord() float64
	CoordSquared() float64
	FillUint64([]uint64)
	FillUint53([]uint64)
	FillFloat64([]float64)
	FillCoord([]float64)
	FillCoordSquared([]float64)
	UnitCirclePoints(n int) int
}

var (
	_ Source = (*PCG32)(nil)
	_ Source = (*Xoroshiro128)(nil)
	_ Source = (*Xoroshiro128x2)(nil)
	_ Source = (*Xoshiro256)(nil)
	_ Source = (*Xoshiro256x2)(nil)
)

// DefaultBufferSize is the length of a Generator's reusable output buffers
// when the caller does not choose one.
const DefaultBufferSize = 1000

// Generator owns one engine instance plus one reusable output buffer per
// element type. The array accessors overwrite and return the same slice on
// every call, so a caller must finish with (or copy) one batch before
// requesting the next. A Generator is not safe for concurrent use; give
// each goroutine its own.
type Generator struct {
	alg    Algorithm
	src    Source
	ints   []uint64
	floats []float64
}

// NewGenerator builds a seeded Generator.
//
// seeds must hold exactly alg.SeedCount() words, or be nil to draw fresh
// ones from RandomSeeds. streamOrJump selects the substream: for PCG it is
// the stream increment (applied before seeding; zero keeps the default
// stream), for every other family it is the number of jumps applied after
// seeding. size is the output buffer length; size <= 0 means
// DefaultBufferSize.
func NewGenerator(alg Algorithm, seeds []uint64, streamOrJump uint64, size int) (*Generator, error) {
	want := alg.SeedCount()
	if want == 0 {
		return nil, Error.New("unknown algorithm %d", int(alg))
	}
	if seeds == nil {
		seeds = RandomSeeds(want)
	}
	if len(seeds) != want {
		return nil, Error.New("algorithm %v takes %d seed words, got %d",
			alg, want, len(seeds))
	}
	if size <= 0 {
		size = DefaultBufferSize
	}

	var src Source
	switch alg {
	case PCG:
		if streamOrJump != 0 {
			src = NewPCG32Stream(seeds[0], streamOrJump)
		} else {
			src = NewPCG32(seeds[0])
		}

	case Xoroshiro128Plus:
		x := NewXoroshiro128(seeds[0], seeds[1])
		for i := uint64(0); i < streamOrJump; i++ {
			x.Jump()
		}
		src = x

	case Xoroshiro128PlusSIMD:
		x := NewXoroshiro128x2(seeds[0], seeds[1], seeds[2], seeds[3])
		for i := uint64(0); i < streamOrJump; i++ {
			x.Jump()
		}
		src = x

	case Xoshiro256Plus:
		x := NewXoshiro256(seeds[0], seeds[1], seeds[2], seeds[3])
		for i := uint64(0); i < streamOrJump; i++ {
			x.Jump()
		}
		src = x

	case Xoshiro256PlusSIMD:
		x := NewXoshiro256x2(
			seeds[0], seeds[1], seeds[2], seeds[3],
			seeds[4], seeds[5], seeds[6], seeds[7])
		for i := uint64(0); i < streamOrJump; i++ {
			x.Jump()
		}
		src = x
	}

	return &Generator{
		alg:    alg,
		src:    src,
		ints:   make([]uint64, size),
		floats: make([]float64, size),
	}, nil
}

// Algorithm returns the family this generator runs.
func (g *Generator) Algorithm() Algorithm { return g.alg }

// BufferSize returns the length of the reusable output buffers.
func (g *Generator) BufferSize() int { return len(g.ints) }

// Source returns the underlying engine for callers that want to drop down
// to the concrete type.
func (g *Generator) Source() Source { return g.src }

// Uint64 returns the next raw word.
func (g *Generator) Uint64() uint64 { return g.src.Uint64() }

// Uint53 returns the next 53-bit value.
func (g *Generator) Uint53() uint64 { return g.src.Uint53() }

// Uint32 returns the next 32-bit value.
func (g *Generator) Uint32() uint32 { return g.src.Uint32() }

// Float64 returns the next value in [0, 1).
func (g *Generator) Float64() float64 { return g.src.Float64() }

// Coord returns the next value in [-1, 1).
func (g *Generator) Coord() float64 { return g.src.Coord() }

// CoordSquared returns the next squared coordinate, in [0, 1].
func (g *Generator) CoordSquared() float64 { return g.src.CoordSquared() }

// Uint64Array refills the shared integer buffer with raw words and returns
// it.
func (g *Generator) Uint64Array() []uint64 {
	g.src.FillUint64(g.ints)
	return g.ints
}

// Uint53Array refills the shared integer buffer with 53-bit values and
// returns it.
func (g *Generator) Uint53Array() []uint64 {
	g.src.FillUint53(g.ints)
	return g.ints
}

// Float64Array refills the shared float buffer with values in [0, 1) and
// returns it.
func (g *Generator) Float64Array() []float64 {
	g.src.FillFloat64(g.floats)
	return g.floats
}

// CoordArray refills the shared float buffer with values in [-1, 1) and
// returns it.
func (g *Generator) CoordArray() []float64 {
	g.src.FillCoord(g.floats)
	return g.floats
}

// CoordSquaredArray refills the shared float buffer with squared
// coordinates and returns it.
func (g *Generator) CoordSquaredArray() []float64 {
	g.src.FillCoordSquared(g.floats)
	return g.floats
}

// UnitCirclePoints generates n points and returns how many land inside the
// unit circle.
func (g *Generator) UnitCirclePoints(n int) int {
	return g.src.UnitCirclePoints(n)
}
