package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

// Emits an sse/avx step for the dual-lane xoroshiro128+ engine to compare
// against what the compiler produces for the paired pure-Go update. The
// state layout matches Xoroshiro128x2: s[0..1] are the two lanes' s0 words,
// s[2..3] the two lanes' s1 words.

func main() {
	TEXT("xoroshiro128x2Step", NOSPLIT, "func(s *[4]uint64) (lo, hi uint64)")
	s := Mem{Base: Load(Param("s"), RAX)}

	s0 := XMM()
	s1 := XMM()
	r := XMM()
	rot := XMM()
	tmp := XMM()

	VMOVDQU(s.Offset(0), s0)
	VMOVDQU(s.Offset(16), s1)

	// lo/hi = s0 + s1
	VPADDQ(s0, s1, r)

	// s1 ^= s0
	VPXOR(s0, s1, s1)

	// s0' = rotl(s0, 24) ^ s1 ^ (s1 << 16)
	VPSLLQ(Imm(24), s0, rot)
	VPSRLQ(Imm(40), s0, tmp)
	VPOR(tmp, rot, rot)
	VPXOR(s1, rot, rot)
	VPSLLQ(Imm(16), s1, tmp)
	VPXOR(tmp, rot, rot)
	VMOVDQU(rot, s.Offset(0))

	// s1' = rotl(s1, 37)
	VPSLLQ(Imm(37), s1, rot)
	VPSRLQ(Imm(27), s1, tmp)
	VPOR(tmp, rot, rot)
	VMOVDQU(rot, s.Offset(16))

	lo, hi := GP64(), GP64()
	VMOVQ(r, lo)
	VPEXTRQ(Imm(1), r, hi)

	Store(lo, ReturnIndex(0))
	Store(hi, ReturnIndex(1))
	RET()

	Generate()
}
