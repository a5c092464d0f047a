// Deterministic random generation. This file centralizes all randomness
// used by the generator:
//   - Determinism: same seed ⇒ identical maze across platforms.
//   - Encapsulation: a single LCG stream; no time-based sources hidden
//     anywhere in the carving or loop-opening code.
//   - Portability: the recurrence uses only uint64 arithmetic truncated
//     to 32 bits, so the float stream is identical on every platform.

package mazegen

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// Linear-congruential parameters (Numerical Recipes): modulus 2^32,
// multiplier 1664525, increment 1013904223. Full period over 2^32.
const (
	lcgMultiplier uint64 = 1664525
	lcgIncrement  uint64 = 1013904223
	lcgModMask    uint64 = 1<<32 - 1
	lcgDivisor           = float64(1 << 32)
)

// lcg is a seedable linear-congruential generator emitting floats in [0,1).
// Not goroutine-safe; each generation run owns its own stream.
type lcg struct {
	state uint64
}

// newLCG returns a generator seeded with the given value.
func newLCG(seed int64) *lcg {
	return &lcg{state: uint64(seed) & lcgModMask}
}

// Float64 advances the stream and returns the next value in [0,1).
func (r *lcg) Float64() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) & lcgModMask

	return float64(r.state) / lcgDivisor
}

// Intn returns a uniform integer in [0,n) drawn from the float stream.
// n must be positive; callers guarantee it.
func (r *lcg) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// shuffle performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(n) time, O(1) extra space.
func (r *lcg) shuffle(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// entropySeed draws a high-entropy default seed for unseeded generation.
// crypto/rand is preferred; the wall clock is the fallback so the
// function never fails.
func entropySeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(b[:]))
	}

	return time.Now().UnixNano()
}
