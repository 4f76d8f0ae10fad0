// Package fastprng implements fast deterministic pseudo random number
// generators: pcg-xsh-rr with 32-bit output, xoroshiro128+ and xoshiro256+,
// plus dual-lane variants of the latter two for bulk generation. Every
// engine is reproducible from its seed words, supports carving
// non-overlapping parallel substreams from one seed (jump-ahead, or stream
// increments for pcg), and fills caller owned buffers without allocating.
//
// None of the generators are cryptographically secure.
package fastprng
