// Package rng provides the deterministic random number generation used by
// the simulator: a SplitMix64-seeded Xoroshiro128+ and a Box-Muller normal
// sampler. Both are plain structs with no locking; every worker owns its own.
package rng

import "math/bits"

// SplitMix64 is used only to expand a user seed into Xoroshiro state.
type SplitMix64 struct {
	x uint64
}

func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{x: seed}
}

func (s *SplitMix64) Next() uint64 {
	s.x += 0x9E3779B97F4A7C15
	z := s.x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Xoroshiro128 is a Xoroshiro128+ generator. The zero value is not valid;
// construct with New so the state is never all zero.
type Xoroshiro128 struct {
	s0, s1 uint64
}

func New(seed uint64) *Xoroshiro128 {
	sm := NewSplitMix64(seed)
	return &Xoroshiro128{s0: sm.Next(), s1: sm.Next()}
}

func (r *Xoroshiro128) Uint64() uint64 {
	s0, s1 := r.s0, r.s1
	out := s0 + s1
	s1 ^= s0
	r.s0 = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	r.s1 = bits.RotateLeft64(s1, 36)
	return out
}

// Float64 returns a uniform draw in [0, 1) built from the top 53 bits.
func (r *Xoroshiro128) Float64() float64 {
	return float64(r.Uint64()>>11) * (1.0 / 9007199254740992.0)
}

// Bool returns true with probability p.
func (r *Xoroshiro128) Bool(p float64) bool {
	return r.Float64() < p
}

// IntRange returns a uniform integer in [lo, hi], inclusive on both ends.
func (r *Xoroshiro128) IntRange(lo, hi int) int {
	return lo + int(float64(hi-lo+1)*r.Float64())
}

// Index returns a uniform index in [0, n).
func (r *Xoroshiro128) Index(n int) int {
	return int(r.Float64() * float64(n))
}
