package fastprng

import (
	"sync"
	"time"

	"github.com/zeebo/xxh3"
)

// SplitMix is the splitmix64 generator. It exists to expand a single word
// of seed material into the several words the larger engines want: its
// state is a plain counter, so it can never collapse to the all-zero state
// that degenerates the xoshiro recurrences.
type SplitMix struct {
	State uint64
}

// Uint64 returns the next word of the sequence.
func (s *SplitMix) Uint64() uint64 {
	s.State += 0x9e3779b97f4a7c15
	z := s.State
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}

// Fill overwrites buf with the next len(buf) words.
func (s *SplitMix) Fill(buf []uint64) {
	for i := range buf {
		buf[i] = s.Uint64()
	}
}

var (
	seedMu  sync.Mutex
	seedGen = SplitMix{State: uint64(time.Now().UnixNano())}
)

// RandomSeeds returns n fresh seed words drawn from a process-wide
// splitmix64 stream started from the clock. Use it when reproducibility
// does not matter.
func RandomSeeds(n int) []uint64 {
	out := make([]uint64, n)
	seedMu.Lock()
	seedGen.Fill(out)
	seedMu.Unlock()
	return out
}

// SeedsFromBytes derives n deterministic seed words from arbitrary bytes.
// Word i is the xxh3 hash of data under seed i+1, so any amount of input
// material fans out into any number of words.
func SeedsFromBytes(data []byte, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = xxh3.HashSeed(data, uint64(i)+1)
	}
	return out
}
