package fastprng

// conversions from one raw generator word onto the supported output
// formats. every derivation is total and bit-exact, which is what lets the
// bulk fill and scalar paths be compared value-for-value.

// two53Inv is 2^-53. multiplying by it is exact, unlike a general divide.
const two53Inv = 1.0 / (1 << 53)

// Uint53 returns the top 53 bits of w, the widest integer a float64 holds
// exactly.
func Uint53(w uint64) uint64 { return w >> 11 }

// Uint32 returns the top 32 bits of w.
func Uint32(w uint64) uint32 { return uint32(w >> 32) }

// UnitFloat maps w onto [0, 1).
func UnitFloat(w uint64) float64 { return float64(w>>11) * two53Inv }

// Coord maps w onto [-1, 1).
func Coord(w uint64) float64 { return UnitFloat(w)*2 - 1 }

// CoordSquared returns the square of Coord(w), in [0, 1].
func CoordSquared(w uint64) float64 {
	c := Coord(w)
	return c * c
}
