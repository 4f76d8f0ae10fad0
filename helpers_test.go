package fastprng

import (
	"testing"

	"github.com/zeebo/assert"
)

// seed material shared across the engine tests.
const (
	seedWord0 = 0x9E3779B97F4A7C15
	seedWord1 = 0x6C078965D5B2A5D3
	seedWord2 = 0xBF58476D1CE4E5B9
	seedWord3 = 0x94D049BB133111EB
	seedWord4 = 0x8C6D2D3A5F9A4B1C
	seedWord5 = 0xD3C5E8B2F7A16E4A
	seedWord6 = 0xA7B9C1D3E5F70829
	seedWord7 = 0xF1E2D3C4B5A69788
)

// testStreamConsistency checks that every bulk fill produces exactly the
// sequence the matching scalar accessor would. mk must return freshly
// seeded, identical engines on every call.
func testStreamConsistency(t *testing.T, mk func() Source) {
	t.Helper()
	const n = 257

	ints := make([]uint64, n)
	floats := make([]float64, n)

	a, b := mk(), mk()
	a.FillUint64(ints)
	for i := range ints {
		assert.Equal(t, ints[i], b.Uint64())
	}

	a, b = mk(), mk()
	a.FillUint53(ints)
	for i := range ints {
		assert.Equal(t, ints[i], b.Uint53())
	}

	a, b = mk(), mk()
	a.FillFloat64(floats)
	for i := range floats {
		assert.Equal(t, floats[i], b.Float64())
	}

	a, b = mk(), mk()
	a.FillCoord(floats)
	for i := range floats {
		assert.Equal(t, floats[i], b.Coord())
	}

	a, b = mk(), mk()
	a.FillCoordSquared(floats)
	for i := range floats {
		assert.Equal(t, floats[i], b.CoordSquared())
	}
}

// testBounds checks the documented output ranges over many values.
func testBounds(t *testing.T, src Source) {
	t.Helper()
	const n = 100000

	for i := 0; i < n; i++ {
		f := src.Float64()
		assert.That(t, f >= 0 && f < 1)

		c := src.Coord()
		assert.That(t, c >= -1 && c < 1)

		sq := src.CoordSquared()
		assert.That(t, sq >= 0 && sq <= 1)

		assert.That(t, src.Uint53() < 1<<53)
	}
}

// testDeterminism checks that two identically seeded engines agree
// value-for-value.
func testDeterminism(t *testing.T, mk func() Source) {
	t.Helper()

	a, b := mk(), mk()
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

// pairSource is the dual-output surface of the dual-lane engines.
type pairSource interface {
	Source
	Uint64x2() (uint64, uint64)
	Uint53x2() (uint64, uint64)
	Float64x2() (float64, float64)
	Coordx2() (float64, float64)
	CoordSquaredx2() (float64, float64)
}

// testPairConsistency checks that every dual-lane fill interleaves exactly
// the sequence the matching *x2 accessor would produce: even indices from
// lane 0, odd from lane 1.
func testPairConsistency(t *testing.T, mk func() pairSource) {
	t.Helper()
	const n = 64

	ints := make([]uint64, n)
	floats := make([]float64, n)

	a, b := mk(), mk()
	a.FillUint64(ints)
	for i := 0; i < n; i += 2 {
		lo, hi := b.Uint64x2()
		assert.Equal(t, ints[i], lo)
		assert.Equal(t, ints[i+1], hi)
	}

	a, b = mk(), mk()
	a.FillUint53(ints)
	for i := 0; i < n; i += 2 {
		lo, hi := b.Uint53x2()
		assert.Equal(t, ints[i], lo)
		assert.Equal(t, ints[i+1], hi)
	}

	a, b = mk(), mk()
	a.FillFloat64(floats)
	for i := 0; i < n; i += 2 {
		lo, hi := b.Float64x2()
		assert.Equal(t, floats[i], lo)
		assert.Equal(t, floats[i+1], hi)
	}

	a, b = mk(), mk()
	a.FillCoord(floats)
	for i := 0; i < n; i += 2 {
		lo, hi := b.Coordx2()
		assert.Equal(t, floats[i], lo)
		assert.Equal(t, floats[i+1], hi)
	}

	a, b = mk(), mk()
	a.FillCoordSquared(floats)
	for i := 0; i < n; i += 2 {
		lo, hi := b.CoordSquaredx2()
		assert.Equal(t, floats[i], lo)
		assert.Equal(t, floats[i+1], hi)
	}

	// an odd-length fill keeps lane 0's value and drops lane 1's, then the
	// stream picks up at the next dual step.
	a, b = mk(), mk()
	odd := make([]uint64, 7)
	a.FillUint64(odd)
	for i := 0; i < 6; i += 2 {
		lo, hi := b.Uint64x2()
		assert.Equal(t, odd[i], lo)
		assert.Equal(t, odd[i+1], hi)
	}
	lo, _ := b.Uint64x2()
	assert.Equal(t, odd[6], lo)

	alo, ahi := a.Uint64x2()
	blo, bhi := b.Uint64x2()
	assert.Equal(t, alo, blo)
	assert.Equal(t, ahi, bhi)
}
