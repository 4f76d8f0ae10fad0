package fastprng

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
)

func TestXoroshiro128(t *testing.T) {
	t.Run("Reference", func(t *testing.T) {
		x := NewXoroshiro128(seedWord0, seedWord1)
		assert.Equal(t, x.Uint64(), uint64(0x1aae4936acbf0a54))
		assert.Equal(t, x.Uint64(), uint64(0xac474e32fb3476fe))
		assert.Equal(t, x.Uint64(), uint64(0xbda5b9972e01cfb5))
		assert.Equal(t, x.Uint64(), uint64(0x2def68b0dbd1bca8))
		assert.Equal(t, x.Uint64(), uint64(0x9c218ea121b25862))
	})

	t.Run("Jump", func(t *testing.T) {
		x := NewXoroshiro128(seedWord0, seedWord1)
		x.Jump()
		assert.Equal(t, x.Uint64(), uint64(0xf8ece1f3b06a6599))

		y := NewXoroshiro128(seedWord2, seedWord3)
		y.Jump()
		assert.Equal(t, y.Uint64(), uint64(0x6e2806212b9eddae))
	})

	t.Run("JumpDisjoint", func(t *testing.T) {
		a := NewXoroshiro128(seedWord0, seedWord1)
		b := NewXoroshiro128(seedWord0, seedWord1)
		b.Jump()

		for i := 0; i < 10000; i++ {
			assert.That(t, a.Uint64() != b.Uint64())
		}
	})

	t.Run("JumpTwice", func(t *testing.T) {
		// k jumps select substream k: two jumps land somewhere one jump
		// does not.
		a := NewXoroshiro128(seedWord0, seedWord1)
		a.Jump()
		a.Jump()
		b := NewXoroshiro128(seedWord0, seedWord1)
		b.Jump()
		assert.That(t, a.Uint64() != b.Uint64())
	})

	t.Run("Determinism", func(t *testing.T) {
		testDeterminism(t, func() Source {
			return NewXoroshiro128(seedWord0, seedWord1)
		})
	})

	t.Run("StreamConsistency", func(t *testing.T) {
		testStreamConsistency(t, func() Source {
			return NewXoroshiro128(seedWord0, seedWord1)
		})
	})

	t.Run("Bounds", func(t *testing.T) {
		testBounds(t, NewXoroshiro128(seedWord0, seedWord1))
	})

	t.Run("UnitCircle", func(t *testing.T) {
		x := NewXoroshiro128(seedWord0, seedWord1)
		inside := x.UnitCirclePoints(400000)
		assert.Equal(t, inside, 314234)

		pi := 4 * float64(inside) / 400000
		assert.That(t, math.Abs(pi-math.Pi) < 0.01)
	})

	t.Run("UnitCircleMatchesManualLoop", func(t *testing.T) {
		a := NewXoroshiro128(seedWord0, seedWord1)
		b := NewXoroshiro128(seedWord0, seedWord1)

		inside := 0
		for i := 0; i < 1000; i++ {
			if b.CoordSquared()+b.CoordSquared() <= 1 {
				inside++
			}
		}
		assert.Equal(t, a.UnitCirclePoints(1000), inside)
	})
}
